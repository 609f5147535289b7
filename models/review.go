package models

import "time"

// ReviewRequest is the payload of POST /api/rides/{rideId}/review.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Review is a rider's feedback on a completed booking. A ride has at most
// one review.
type Review struct {
	ReviewID  string    `json:"id"`
	RideID    string    `json:"rideId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}
