package entity

type UserID string

func (u UserID) String() string {
	return string(u)
}

func (u UserID) Valid() bool {
	return len(u) != 0
}

// AmountPerUser holds one running total per participant.
type AmountPerUser map[UserID]float64
