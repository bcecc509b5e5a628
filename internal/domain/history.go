package domain

import "time"

type Achievement struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt"`
}

type InsertAchievement struct {
	UserID      int64
	Name        string
	Description string
	Unlocked    *bool
	UnlockedAt  *time.Time
}

// Одна сыгранная ставка. Только добавляются, не меняются
type GameHistory struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	GameType  GameType  `json:"gameType"`
	Bet       int64     `json:"bet"`
	Won       bool      `json:"won"`
	WinAmount int64     `json:"winAmount"`
	PlayedAt  time.Time `json:"playedAt"`
}

type InsertGameHistory struct {
	UserID    int64
	GameType  GameType
	Bet       int64
	Won       bool
	WinAmount *int64
	PlayedAt  *time.Time
}
