package domain

type CtxKey string

const (
	KeyAdminUID   CtxKey = "AdminUID"
	KeyAdminEmail CtxKey = "AdminEmail"
	KeyIDToken    CtxKey = "IDToken"
)
