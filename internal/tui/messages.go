package tui

type authDoneMsg struct {
	err error
}

type listLoadedMsg struct {
	err error
}

type recordSavedMsg struct {
	err error
}

type recordDeletedMsg struct {
	err error
}

type toastMsg struct {
	text    string
	failure bool
}

type clearToastMsg struct{}

type copiedMsg struct {
	err error
}
