package ports

import (
	"context"

	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
)

// Task unidad de trabajo en segundo plano (notificación, PDF).
type Task struct {
	Kind string // etiqueta para logs, ej. "notificacion-orden", "pdf-factura"
	Run  func(ctx context.Context) error
}

// TaskSubmitter encola tareas fire-and-forget. Submit retorna false si la
// cola está llena; el caller registra el descarte y continúa: el trabajo en
// segundo plano jamás bloquea ni revierte la escritura que lo disparó.
type TaskSubmitter interface {
	Submit(t Task) bool
}

// Notifier envía avisos simulados (email/SMS) al cliente.
type Notifier interface {
	NotifyWorkOrderFinished(ctx context.Context, client *entity.Client, order *entity.WorkOrder) error
}

// InvoicePDFRenderer genera la representación PDF de una factura.
type InvoicePDFRenderer interface {
	RenderInvoicePDF(ctx context.Context, invoice *entity.Invoice, client *entity.Client) ([]byte, error)
}

// PDFStorage persiste el PDF generado y devuelve la ruta registrable.
type PDFStorage interface {
	SaveInvoicePDF(filename string, data []byte) (string, error)
}
