package initwizard

type Result struct {
	SourceDir     string
	FormatCommand string
	CheckCommand  string
}

func DefaultResult(defaultSourceDir string) Result {
	return Result{
		SourceDir:     defaultSourceDir,
		FormatCommand: "black",
		CheckCommand:  "flake8",
	}
}
