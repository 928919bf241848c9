package models

// Amount is a pointer so a missing or non-numeric value is
// distinguishable from a legitimate zero delta.
type ChangeBalanceRequest struct {
	Amount      *int   `json:"amount"`
	Description string `json:"description"`
}

type ChangeOtherBalanceRequest struct {
	UserID      uint   `json:"userId"`
	Amount      *int   `json:"amount"`
	Description string `json:"description"`
}

type BalanceResponse struct {
	Kisses int `json:"kisses"`
	Level  int `json:"level"`
	XP     int `json:"xp"`
}

type ChangeBalanceResponse struct {
	Message string `json:"message"`
	Kisses  int    `json:"kisses"`
}

// TargetUser is the slice of the target user echoed back from a
// change-other mutation.
type TargetUser struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Kisses int    `json:"kisses"`
}

type ChangeOtherBalanceResponse struct {
	Message string     `json:"message"`
	User    TargetUser `json:"user"`
}
