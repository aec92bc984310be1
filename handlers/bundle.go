package handlers

// HandlerBundle groups every handler so route registration takes a single
// argument.
type HandlerBundle struct {
	Auth          *AuthHandler
	Establishment *EstablishmentHandler
	Barber        *BarberHandler
	Client        *ClientHandler
	Offering      *OfferingHandler
	BreakRule     *BreakRuleHandler
	TimeBlock     *TimeBlockHandler
	Availability  *AvailabilityHandler
	Appointment   *AppointmentHandler
}
