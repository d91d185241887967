package services

import (
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message is a notification ready to be stored for an order's owner.
type Message struct {
	Type  notification.Type
	Title string
	Body  string
}

// NotificationComposer writes the Indonesian texts customers receive when an
// order is created, accepted, completed or cancelled.
//
// Business rules:
//   - Accept and complete wording depends on the delivery method
//   - Accept appends the estimated done date when one is known
//   - Completing a cash order adds a payment reminder with the total amount
//
// Example:
//
//	composer := services.NewNotificationComposer()
//	for _, m := range composer.OrderAccepted(o) {
//	    // persist m for o.UserID()
//	}
type NotificationComposer struct {
	printer  *message.Printer
	location *time.Location
}

// NewNotificationComposer formats amounts with Indonesian digit grouping and
// dates in Western Indonesian Time.
func NewNotificationComposer() NotificationComposer {
	return NotificationComposer{
		printer:  message.NewPrinter(language.Indonesian),
		location: time.FixedZone("WIB", 7*60*60),
	}
}

// OrderCreated confirms a freshly placed order.
func (c NotificationComposer) OrderCreated(o *order.Order) []Message {
	return []Message{{
		Type:  notification.OrderType,
		Title: "Pesanan Berhasil Dibuat",
		Body: fmt.Sprintf("Pesanan %s berhasil dibuat dengan total %s dan sedang menunggu konfirmasi.",
			o.Number(), c.FormatRupiah(o.TotalAmount())),
	}}
}

// OrderAccepted tells the customer work has started.
func (c NotificationComposer) OrderAccepted(o *order.Order) []Message {
	var body string
	if o.DeliveryMethod() == order.Pickup {
		body = fmt.Sprintf("Pesanan %s telah diterima. Kurir kami akan menjemput cucian Anda di %s.",
			o.Number(), o.DeliveryAddress())
	} else {
		body = fmt.Sprintf("Pesanan %s telah diterima dan sedang diproses. "+
			"Kami akan mengabari Anda saat cucian siap diambil di outlet.", o.Number())
	}
	if !o.EstimatedDoneDate().IsZero() {
		body += " Estimasi selesai: " + c.FormatDate(o.EstimatedDoneDate()) + "."
	}

	return []Message{{
		Type:  notification.OrderType,
		Title: "Pesanan Diterima",
		Body:  body,
	}}
}

// OrderCompleted announces the laundry is done, plus a cash reminder when due.
func (c NotificationComposer) OrderCompleted(o *order.Order) []Message {
	var body string
	if o.DeliveryMethod() == order.Pickup {
		body = fmt.Sprintf("Pesanan %s telah selesai dan akan segera diantar kurir ke alamat Anda.", o.Number())
	} else {
		body = fmt.Sprintf("Pesanan %s telah selesai. Silakan ambil cucian Anda di outlet.", o.Number())
	}

	messages := []Message{{
		Type:  notification.OrderType,
		Title: "Pesanan Selesai",
		Body:  body,
	}}

	if o.PaymentMethod() == order.Cash {
		messages = append(messages, Message{
			Type:  notification.PaymentType,
			Title: "Pengingat Pembayaran",
			Body: fmt.Sprintf("Mohon siapkan pembayaran tunai sebesar %s untuk pesanan %s.",
				c.FormatRupiah(o.TotalAmount()), o.Number()),
		})
	}

	return messages
}

// OrderCancelled confirms a cancellation.
func (c NotificationComposer) OrderCancelled(o *order.Order) []Message {
	return []Message{{
		Type:  notification.OrderType,
		Title: "Pesanan Dibatalkan",
		Body:  fmt.Sprintf("Pesanan %s telah dibatalkan.", o.Number()),
	}}
}

// ForStatus picks the messages matching the order's current status. It is used
// after administrative status changes. Pending produces nothing.
func (c NotificationComposer) ForStatus(o *order.Order) []Message {
	switch o.Status() {
	case order.Processing:
		return c.OrderAccepted(o)
	case order.Completed:
		return c.OrderCompleted(o)
	case order.Cancelled:
		return c.OrderCancelled(o)
	case order.Pending, order.Unknown:
	}
	return nil
}

// FormatRupiah renders whole rupiah with Indonesian grouping, e.g. "Rp 12.000".
func (c NotificationComposer) FormatRupiah(m kernel.Money) string {
	return c.printer.Sprintf("Rp %d", m.Amount().Round(0).IntPart())
}

// FormatDate renders e.g. "Sabtu, 4 Oktober 2026".
func (c NotificationComposer) FormatDate(t time.Time) string {
	local := t.In(c.location)
	return fmt.Sprintf("%s, %d %s %d",
		indonesianWeekdays[local.Weekday()], local.Day(), indonesianMonths[local.Month()-1], local.Year())
}

var indonesianWeekdays = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}
