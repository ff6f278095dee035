package ports

// NotificationKind discriminates the jobs handled by the notifier workers.
type NotificationKind string

const (
	NotifyStatusChange NotificationKind = "status_change"
	NotifyInvoiceEmail NotificationKind = "invoice_email"
)

// Notification is one asynchronous delivery job. TrackingNumber doubles as
// the sharding key so notifications for the same parcel stay ordered.
type Notification struct {
	Kind           NotificationKind
	TrackingNumber string
	CustomerEmail  string
	Status         string
	InvoiceNumber  string
}

// Notifier queues notifications for asynchronous delivery.
type Notifier interface {
	Enqueue(n Notification)
}
