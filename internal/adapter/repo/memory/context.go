package memory

import "context"

type txKeyType struct{}

var txKey = txKeyType{}

func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey, true)
}

// inTx reports whether the store lock is already held by a surrounding
// RunInTx; repo methods must not take it again.
func inTx(ctx context.Context) bool {
	held, _ := ctx.Value(txKey).(bool)
	return held
}
