package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RidesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "campuspool", Name: "rides_created_total", Help: "Total rides posted"})

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "campuspool", Name: "bookings_total", Help: "Booking transitions by resulting status"},
		[]string{"status"},
	)

	PaymentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "campuspool", Name: "payments_total", Help: "Completed simulated payments"})

	ChatMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "campuspool", Name: "chat_messages_total", Help: "Persisted chat messages"})

	ChatConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "campuspool", Name: "chat_connections", Help: "Open chat websocket connections"})

	ReportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "campuspool", Name: "reports_total", Help: "Filed abuse/dispute reports"})
)
