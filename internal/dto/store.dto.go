package dto

type StoreRow struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Address   string   `json:"address"`
	OwnerID   *uint    `json:"owner_id"`
	AvgRating *float64 `json:"avg_rating"`
}

type UserStoreRow struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	AvgRating  *float64 `json:"avg_rating"`
	UserRating *int     `json:"user_rating"`
}

type AdminDashboard struct {
	Users   int64 `json:"users"`
	Stores  int64 `json:"stores"`
	Ratings int64 `json:"ratings"`
}
