package diag

import (
	"fmt"
)

// Code numbers a diagnostic for stable reference in output and tests.
// Zero means the diagnostic carries no code.
type Code uint32

const (
	// CodeNone помечает диагностику без номера
	CodeNone Code = 0

	// Синтаксические (2000-е)
	SynUnexpectedToken    Code = 2001
	SynExpectedToken      Code = 2002
	SynInvalidToken       Code = 2003
	SynMissingSemicolon   Code = 2004
	SynMissingParenthesis Code = 2005
	SynMissingBrace       Code = 2006
	SynUnexpectedEof      Code = 2007
	SynInternalError      Code = 2999

	// Ввод-вывод (4000-е)
	IOLoadFileError Code = 4001
)

// ID returns the bracketed form used in headers, e.g. "[2001]".
func (c Code) ID() string {
	return fmt.Sprintf("[%d]", uint32(c))
}
