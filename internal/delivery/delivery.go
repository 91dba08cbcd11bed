package delivery

import "context"

// Delivery is a long-running inbound surface started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
