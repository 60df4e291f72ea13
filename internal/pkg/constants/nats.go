package constants

// NATS subjects for domain events
const (
	SubjectRideCreated   = "ride.created"
	SubjectRideCompleted = "ride.completed"
	SubjectRideCancelled = "ride.cancelled"

	SubjectBookingRequested = "booking.requested"
	SubjectBookingApproved  = "booking.approved"
	SubjectBookingRejected  = "booking.rejected"
	SubjectBookingConfirmed = "booking.confirmed"
)

// Queue groups
const (
	QueueGroupChat = "chat-service"
)
