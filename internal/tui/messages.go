package tui

type errMsg struct {
	err error
}

type tutorialSavedMsg struct{}

type linkCopiedMsg struct{}
