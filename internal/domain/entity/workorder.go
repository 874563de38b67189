package entity

import "time"

// WorkOrderState estados de una orden de trabajo. Las transiciones son
// libres (sin orden impuesto); llegar a FINISHED dispara la notificación
// al cliente y FINISHED/DELIVERED estampan la fecha real de entrega.
type WorkOrderState string

const (
	WorkOrderPending    WorkOrderState = "PENDING"
	WorkOrderInProgress WorkOrderState = "IN_PROGRESS"
	WorkOrderPaused     WorkOrderState = "PAUSED"
	WorkOrderFinished   WorkOrderState = "FINISHED"
	WorkOrderDelivered  WorkOrderState = "DELIVERED"
)

// ValidTarget indica si el estado es un destino permitido de changeState.
func (s WorkOrderState) ValidTarget() bool {
	switch s {
	case WorkOrderPending, WorkOrderInProgress, WorkOrderPaused,
		WorkOrderFinished, WorkOrderDelivered:
		return true
	}
	return false
}

// WorkOrderPriority prioridad de la orden.
type WorkOrderPriority string

const (
	PriorityLow    WorkOrderPriority = "LOW"
	PriorityMedium WorkOrderPriority = "MEDIUM"
	PriorityHigh   WorkOrderPriority = "HIGH"
	PriorityUrgent WorkOrderPriority = "URGENT"
)

// Valid indica si la prioridad pertenece al conjunto cerrado.
func (p WorkOrderPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// WorkOrder tarea de ejecución/entrega asociada a un negocio.
type WorkOrder struct {
	ID             string
	Code           string
	ProjectID      string
	State          WorkOrderState
	Priority       WorkOrderPriority
	Description    string
	Observations   string
	EstimatedStart time.Time
	EstimatedEnd   time.Time
	DeliveredAt    *time.Time // solo al llegar a FINISHED/DELIVERED
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
