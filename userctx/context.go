package userctx

import "context"

// Context key type
type contextKey string

const clientAddressKey contextKey = "client_address"
const RequestIDKey contextKey = "request_id"

// SetClientAddress adds the caller's network address to the request context
func SetClientAddress(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, clientAddressKey, addr)
}

// GetClientAddress retrieves the caller's network address from the request context
func GetClientAddress(ctx context.Context) string {
	addr, ok := ctx.Value(clientAddressKey).(string)
	if !ok {
		return ""
	}
	return addr
}

// SetRequestID adds the request id to the request context
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetRequestID retrieves the request id from the request context
func GetRequestID(ctx context.Context) string {
	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
