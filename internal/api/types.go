package api

// User is the identity the API reports for an authenticated account
type User struct {
	ID       int64  `json:"id"`
	Nick     string `json:"nick"`
	Email    string `json:"email"`
	MaxPrice float64 `json:"max_price,omitempty"`
}

// AuthResponse is the payload returned by login, register, and refresh
type AuthResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	User      User   `json:"user"`
}

// Genre is a catalog genre
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Game is the summary shape used in listings and search results
type Game struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	BackgroundImage string  `json:"background_image"`
	Released        string  `json:"released"`
	Rating          float64 `json:"rating"`
	Genres          []Genre `json:"genres"`
	Price           float64 `json:"price,omitempty"`
}

// GameDetails is the full catalog entry shown on a detail page
type GameDetails struct {
	Game
	Description string       `json:"description"`
	Tags        []Genre      `json:"tags"`
	Platforms   []Platform   `json:"platforms"`
	Stores      []Store      `json:"stores"`
	Screenshots []Screenshot `json:"screenshots,omitempty"`
}

// Platform is a platform entry on a game detail page
type Platform struct {
	Platform Genre `json:"platform"`
}

// Store is a storefront entry on a game detail page
type Store struct {
	Store struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Domain string `json:"domain"`
	} `json:"store"`
}

// Screenshot is a game screenshot reference
type Screenshot struct {
	ID    int64  `json:"id"`
	Image string `json:"image"`
}

// Page is a paginated listing response
type Page struct {
	Count    int    `json:"count"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Results  []Game `json:"results"`
}

// FavoriteSource says which catalog a favorite refers to
type FavoriteSource string

const (
	// SourceCatalog marks a favorite from the Ludex catalog
	SourceCatalog FavoriteSource = "catalog"
	// SourceRAWG marks a favorite from the external RAWG catalog
	SourceRAWG FavoriteSource = "rawg"
)

// Favorite is a user-curated association with a catalog entry.
// The source field is explicit; the client never sniffs field presence.
type Favorite struct {
	Source          FavoriteSource `json:"source"`
	GameID          int64          `json:"game_id"`
	Name            string         `json:"name"`
	BackgroundImage string         `json:"background_image,omitempty"`
	AddedAt         string         `json:"added_at,omitempty"`
}

// FavoritesPage is a paginated favorites response
type FavoritesPage struct {
	Count   int        `json:"count"`
	Next    string     `json:"next"`
	Results []Favorite `json:"results"`
}
