package model

import "time"

type Project struct {
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	ID        int64     `json:"id,string"`
}
