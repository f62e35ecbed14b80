package patterns

import (
	"fmt"
	"io"
)

// ExpenseRequest travels down the approval chain.
type ExpenseRequest struct {
	Amount      int
	Description string
}

// Approver handles a request or forwards it to the next link.
type Approver interface {
	SetNext(next Approver)
	Approve(req ExpenseRequest) (string, bool)
}

// Approval limits for the three fixed links of the chain.
const (
	managerLimit  = 1000
	directorLimit = 10000
	ceoLimit      = 100000
)

// Manager approves small expenses.
type Manager struct {
	next Approver
}

func (m *Manager) SetNext(next Approver) { m.next = next }

func (m *Manager) Approve(req ExpenseRequest) (string, bool) {
	if req.Amount <= managerLimit {
		return fmt.Sprintf("✅ Manager approved: %s", req.Description), true
	}
	if m.next == nil {
		return "", false
	}
	return m.next.Approve(req)
}

// Director approves mid-size expenses.
type Director struct {
	next Approver
}

func (d *Director) SetNext(next Approver) { d.next = next }

func (d *Director) Approve(req ExpenseRequest) (string, bool) {
	if req.Amount <= directorLimit {
		return fmt.Sprintf("✅ Director approved: %s", req.Description), true
	}
	if d.next == nil {
		return "", false
	}
	return d.next.Approve(req)
}

// CEO is the last link: anything above the limit is rejected outright.
type CEO struct{}

func (CEO) SetNext(Approver) {}

func (CEO) Approve(req ExpenseRequest) (string, bool) {
	if req.Amount <= ceoLimit {
		return fmt.Sprintf("✅ CEO approved: %s", req.Description), true
	}
	return "❌ Request rejected: amount too large", false
}

// NewApprovalChain links manager → director → CEO and returns the entry point.
func NewApprovalChain() Approver {
	manager := &Manager{}
	director := &Director{}
	director.SetNext(CEO{})
	manager.SetNext(director)
	return manager
}

// DemoChainOfResponsibility walks requests down the approval chain.
func DemoChainOfResponsibility(w io.Writer) {
	banner(w, "🔗 CHAIN OF RESPONSIBILITY DEMO")
	fmt.Fprintln(w, "\nThis pattern passes requests along a chain of handlers.")
	fmt.Fprintln(w, "Go benefit: each link holds the next behind a small interface.")

	section(w, "Example 1: Approval chain")
	chain := NewApprovalChain()

	requests := []ExpenseRequest{
		{Amount: 500, Description: "Office supplies"},
		{Amount: 5000, Description: "Equipment upgrade"},
		{Amount: 50000, Description: "Infrastructure project"},
		{Amount: 200000, Description: "Acquisition"},
	}

	fmt.Fprintln(w, "Processing requests through approval chain:")
	for _, req := range requests {
		fmt.Fprintf(w, "\nRequest: %s - $%d\n", req.Description, req.Amount)
		result, _ := chain.Approve(req)
		fmt.Fprintf(w, "Result: %s\n", result)
	}

	points(w,
		"Sender never knows which link decides",
		"Links forward what they cannot handle",
		"Chain order and limits configured in one place",
		"Use case: middleware, filters, validators",
	)
}
