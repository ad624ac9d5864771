package entities

import "fmt"

// OrderStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - The OS service is the source of truth for order state.
//   - Every mutation goes through the transition table below; there is no
//     side door, webhook-driven updates included.

type OrderStatus string

const (
	OrderStatusRecebida             OrderStatus = "recebida"
	OrderStatusEmDiagnostico        OrderStatus = "em_diagnostico"
	OrderStatusAguardandoAprovacao  OrderStatus = "aguardando_aprovacao"
	OrderStatusEmExecucao           OrderStatus = "em_execucao"
	OrderStatusFinalizada           OrderStatus = "finalizada"
	OrderStatusEntregue             OrderStatus = "entregue"
	OrderStatusCancelada            OrderStatus = "cancelada"
)

// Operation names a state-machine move. The names surface in transition
// errors, so they read as business actions.
type Operation string

const (
	OpStartDiagnosis    Operation = "start_diagnosis"
	OpGenerateBudget    Operation = "generate_budget"
	OpApproveBudget     Operation = "approve_budget"
	OpDisapproveBudget  Operation = "disapprove_budget"
	OpFinalizeExecution Operation = "finalize_execution"
	OpDeliver           Operation = "deliver"
	OpCancel            Operation = "cancel"
)

// transitions is the legal-move set: source status × operation → target.
// Cancellation edges are enumerated per non-terminal source so the table is
// the single authority on reachability.
var transitions = map[OrderStatus]map[Operation]OrderStatus{
	OrderStatusRecebida: {
		OpStartDiagnosis: OrderStatusEmDiagnostico,
		OpCancel:         OrderStatusCancelada,
	},
	OrderStatusEmDiagnostico: {
		OpGenerateBudget: OrderStatusAguardandoAprovacao,
		OpCancel:         OrderStatusCancelada,
	},
	OrderStatusAguardandoAprovacao: {
		OpApproveBudget:    OrderStatusEmExecucao,
		OpDisapproveBudget: OrderStatusCancelada,
		OpCancel:           OrderStatusCancelada,
	},
	OrderStatusEmExecucao: {
		OpFinalizeExecution: OrderStatusFinalizada,
		OpCancel:            OrderStatusCancelada,
	},
	OrderStatusFinalizada: {
		OpDeliver: OrderStatusEntregue,
		OpCancel:  OrderStatusCancelada,
	},
}

// TransitionError reports an operation attempted from a status that does not
// allow it.
type TransitionError struct {
	From      OrderStatus
	Operation Operation
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("operation %s is not allowed from status %s", e.Operation, e.From)
}

// NextStatus resolves the target of applying op from current, or a
// TransitionError when the move is illegal.
func NextStatus(current OrderStatus, op Operation) (OrderStatus, error) {
	if target, ok := transitions[current][op]; ok {
		return target, nil
	}
	return "", &TransitionError{From: current, Operation: op}
}

// IsTerminal reports whether no operation can leave status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusEntregue || s == OrderStatusCancelada
}

// IsEditable reports whether line items may still be changed.
func (s OrderStatus) IsEditable() bool {
	return s == OrderStatusRecebida || s == OrderStatusEmDiagnostico
}

// IsActive reports whether the order still belongs in the operational queue.
func (s OrderStatus) IsActive() bool {
	switch s {
	case OrderStatusFinalizada, OrderStatusEntregue, OrderStatusCancelada:
		return false
	}
	return true
}

// QueuePriority orders active statuses for the staff work queue. Lower is
// more urgent; unknown statuses sink to the bottom.
func (s OrderStatus) QueuePriority() int {
	switch s {
	case OrderStatusEmExecucao:
		return 1
	case OrderStatusAguardandoAprovacao:
		return 2
	case OrderStatusEmDiagnostico:
		return 3
	case OrderStatusRecebida:
		return 4
	default:
		return 5
	}
}
