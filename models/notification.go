package models

// MessagePayload is the body of an asynq notification task. Delivery itself
// (WhatsApp/Evolution API) lives behind the notification.ClientMessenger
// interface.
type MessagePayload struct {
	EstablishmentID string `json:"establishmentId"`
	AppointmentID   string `json:"appointmentId"`
	ClientID        string `json:"clientId"`
	Kind            string `json:"kind"` // confirmation or reminder
	Body            string `json:"body"`
}
