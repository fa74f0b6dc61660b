package diag

import (
	"sort"
)

// CollectEmitter накапливает диагностики в памяти.
// Используется тестами и драйвером для отложенного вывода.
type CollectEmitter struct {
	diags []Diag
}

// NewCollectEmitter creates an empty collector.
func NewCollectEmitter() *CollectEmitter {
	return &CollectEmitter{}
}

func (c *CollectEmitter) Emit(d Diag) {
	c.diags = append(c.diags, d)
}

// Diags возвращает накопленный срез.
// READONLY: срез указывает на внутренний массив.
func (c *CollectEmitter) Diags() []Diag {
	return c.diags
}

func (c *CollectEmitter) Len() int {
	return len(c.diags)
}

// HasErrors reports whether any collected diagnostic is an error or
// fatal.
func (c *CollectEmitter) HasErrors() bool {
	for i := range c.diags {
		if c.diags[i].Level >= LevelError {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by primary span, then level (higher first),
// then code, for deterministic output after parallel work.
func (c *CollectEmitter) Sort() {
	sort.SliceStable(c.diags, func(i, j int) bool {
		di, dj := c.diags[i], c.diags[j]
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Level != dj.Level {
			return di.Level > dj.Level
		}
		return di.Code < dj.Code
	})
}
