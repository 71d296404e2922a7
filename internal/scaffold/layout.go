package scaffold

import "github.com/skelgen/skelgen/internal/fsmanager"

const (
	manifestParent = ""
	manifestName   = "Cargo.toml"
	mainParent     = "src"
	mainName       = "main.rs"
)

// Layout returns the entries every new project is created with.
func Layout() []fsmanager.Entry {
	return []fsmanager.Entry{
		fsmanager.NewEntry("src/application", "mod.rs", fsmanager.File),
		fsmanager.NewEntry("src/domain", "mod.rs", fsmanager.File),
		fsmanager.NewEntry("src/infrastructure", "mod.rs", fsmanager.File),
		manifestEntry(),
		mainEntry(),
	}
}

func manifestEntry() fsmanager.Entry {
	return fsmanager.NewEntry(manifestParent, manifestName, fsmanager.File)
}

func mainEntry() fsmanager.Entry {
	return fsmanager.NewEntry(mainParent, mainName, fsmanager.File)
}
