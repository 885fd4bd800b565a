package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyProfileID CtxKey = "ProfileID"
	KeyUserRole  CtxKey = "Role"
	KeyUserName  CtxKey = "Name"
)
