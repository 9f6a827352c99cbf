package gateway

import "context"

type tokenCtxKey struct{}

// WithToken はリモート呼び出しへ転送するトークンをcontextに載せる。
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// TokenFromContext は転送用トークンを返す。
// 無ければ空文字（その場合 Authorization ヘッダは付けない）。
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenCtxKey{}).(string)
	return token
}
