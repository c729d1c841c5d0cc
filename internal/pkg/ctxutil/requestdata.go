package ctxutil

import "context"

type requestDataKey struct{}

// RequestData carries the authenticated caller through a request. AccountID
// is the canonical string form of the account identifier; the active storage
// engine decides what it parses to.
type RequestData struct {
	AccountID   string
	TokenString string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	rd, ok := ctx.Value(requestDataKey{}).(*RequestData)
	if !ok {
		return nil
	}
	return rd
}
