package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastNotifier bridges the service layer's notices into the running
// bubbletea program as transient toasts. Notices posted before Attach are
// dropped: there is no UI to show them on yet.
type ToastNotifier struct {
	mu      sync.RWMutex
	program *tea.Program
}

func NewToastNotifier() *ToastNotifier {
	return &ToastNotifier{}
}

// Attach binds the notifier to a running program. Called once by TUI.Run.
func (n *ToastNotifier) Attach(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

func (n *ToastNotifier) Success(msg string) {
	n.send(toastMsg{text: msg})
}

func (n *ToastNotifier) Error(msg string) {
	n.send(toastMsg{text: msg, failure: true})
}

func (n *ToastNotifier) send(msg toastMsg) {
	n.mu.RLock()
	p := n.program
	n.mu.RUnlock()

	if p != nil {
		p.Send(msg)
	}
}
