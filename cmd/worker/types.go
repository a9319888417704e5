package main

import (
	"fmt"

	"github.com/blacknovastudio/briefing-portal/internal/notify"
)

func subject(c notify.Confirmation) string {
	return fmt.Sprintf("Order %s received — %s", c.OrderReference, c.ProjectName)
}

func body(c notify.Confirmation) string {
	name := c.ClientName
	if name == "" {
		name = "Client"
	}
	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your briefing for %q has been received and is now being reviewed by our architects.\n\n"+
			"Order reference: %s\n"+
			"Delivery channel: %s\n\n"+
			"We will reach out as soon as work begins.\n\n"+
			"— BlackNova Studio",
		name, c.ProjectName, c.OrderReference, c.DeliveryMethod,
	)
}
