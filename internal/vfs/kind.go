package vfs

// NodeKind discriminates the two node payloads.
type NodeKind uint8

const (
	// NodeDir is a directory node carrying a Dir payload.
	NodeDir NodeKind = iota
	// NodeFile is a file node carrying a File payload.
	NodeFile
)

func (k NodeKind) String() string {
	switch k {
	case NodeDir:
		return "Dir"
	case NodeFile:
		return "File"
	}
	return "Unknown"
}

// DirKind classifies a directory by its path at the project root.
type DirKind uint8

const (
	// DirNormal is any directory without a reserved top-level name.
	DirNormal DirKind = iota
	// DirSrc is the project root itself or the top-level src/.
	DirSrc
	// DirBuild is the top-level build/.
	DirBuild
	// DirExamples is the top-level examples/.
	DirExamples
	// DirTests is the top-level tests/.
	DirTests
	// DirDocs is the top-level docs/.
	DirDocs

	dirKindCount
)

var dirKindNames = [dirKindCount]string{
	DirNormal:   "Normal",
	DirSrc:      "Src",
	DirBuild:    "Build",
	DirExamples: "Examples",
	DirTests:    "Tests",
	DirDocs:     "Docs",
}

func (k DirKind) String() string {
	if k < dirKindCount {
		return dirKindNames[k]
	}
	return "Unknown"
}

// FileKind classifies a file by its name and place in the tree.
type FileKind uint8

const (
	// FileNormal is a regular Beleg source file (.bl or .beleg).
	FileNormal FileKind = iota
	// FileMain is src/main.bl, the executable entry point.
	FileMain
	// FileMod is a mod.bl module entry anywhere in the tree.
	FileMod
	// FilePackageConfig is the root package.toml manifest.
	FilePackageConfig
	// FileOther is anything that is not a Beleg source file.
	FileOther

	fileKindCount
)

var fileKindNames = [fileKindCount]string{
	FileNormal:        "Normal",
	FileMain:          "Main",
	FileMod:           "Mod",
	FilePackageConfig: "PackageConfig",
	FileOther:         "Other",
}

func (k FileKind) String() string {
	if k < fileKindCount {
		return fileKindNames[k]
	}
	return "Unknown"
}
