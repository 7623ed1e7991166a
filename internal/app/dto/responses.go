package dto

import (
	"time"

	"gamerental/internal/app/ds"
	"gamerental/internal/app/repository"
	"gamerental/internal/app/validation"
)

type ClientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document"`
	CreatedAt time.Time `json:"created_at"`
}

type PlatformResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type LevelResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type GameResponse struct {
	ID         uint              `json:"id"`
	Name       string            `json:"name"`
	PlatformID uint              `json:"platform_id"`
	Image      *string           `json:"image"`
	Platform   *PlatformResponse `json:"platform,omitempty"`
	Licenses   []LicenseResponse `json:"licenses,omitempty"`
}

type LicenseResponse struct {
	ID               uint             `json:"id"`
	GameID           uint             `json:"game_id"`
	Status           string           `json:"status"`
	Type             string           `json:"type"`
	Price            float64          `json:"price"`
	DigitalAccountID *uint            `json:"digital_account_id"`
	Game             *GameResponse    `json:"game,omitempty"`
	DigitalAccount   *AccountResponse `json:"digital_account,omitempty"`
}

type AccountResponse struct {
	ID        uint            `json:"id"`
	StoreID   string          `json:"store_id"`
	Email     string          `json:"email"`
	ClientID  uint            `json:"client_id"`
	BirthDate string          `json:"birth_date"` // DD/MM/YYYY
	Client    *ClientResponse `json:"client,omitempty"`
}

type OrderLineResponse struct {
	ID        uint             `json:"id"`
	LicenseID uint             `json:"license_id"`
	License   *LicenseResponse `json:"license,omitempty"`
}

type OrderResponse struct {
	ID        uint                `json:"id"`
	ClientID  uint                `json:"client_id"`
	Value     float64             `json:"value"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	Client    *ClientResponse     `json:"client,omitempty"`
	Lines     []OrderLineResponse `json:"lines"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	LevelID uint           `json:"level_id"`
	Level   *LevelResponse `json:"level,omitempty"`
}

// Dashboard keys keep the names the front end already reads.
type TopGameResponse struct {
	Jogo       string `json:"jogo"`
	Plataforma string `json:"plataforma"`
	Total      int64  `json:"total"`
}

type DashboardResponse struct {
	Datas            []string          `json:"datas"`
	Valores          []float64         `json:"valores"`
	Quantidade       int               `json:"quantidade"`
	Total            float64           `json:"total"`
	Contas           int64             `json:"contas"`
	Licencas         int64             `json:"licencas"`
	LicencasAlugadas int64             `json:"licencasAlugadas"`
	LicencasLivres   int64             `json:"licencasLivres"`
	TaxaOcupacao     float64           `json:"taxaOcupacao"`
	Top10            []TopGameResponse `json:"top10"`
}

// ============ Mapping ============

func NewClientResponse(c *ds.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Document:  c.Document,
		CreatedAt: c.CreatedAt,
	}
}

func NewPlatformResponse(p *ds.Platform) *PlatformResponse {
	if p == nil {
		return nil
	}
	return &PlatformResponse{ID: p.ID, Name: p.Name}
}

func NewLevelResponse(l *ds.Level) *LevelResponse {
	if l == nil {
		return nil
	}
	return &LevelResponse{ID: l.ID, Name: l.Name}
}

func NewGameResponse(g *ds.Game) *GameResponse {
	if g == nil {
		return nil
	}
	resp := &GameResponse{
		ID:         g.ID,
		Name:       g.Name,
		PlatformID: g.PlatformID,
		Image:      g.Image,
		Platform:   NewPlatformResponse(g.Platform),
	}
	for i := range g.Licenses {
		resp.Licenses = append(resp.Licenses, *NewLicenseResponse(&g.Licenses[i]))
	}
	return resp
}

func NewLicenseResponse(l *ds.License) *LicenseResponse {
	if l == nil {
		return nil
	}
	return &LicenseResponse{
		ID:               l.ID,
		GameID:           l.GameID,
		Status:           l.Status,
		Type:             l.Type,
		Price:            l.Price,
		DigitalAccountID: l.DigitalAccountID,
		Game:             NewGameResponse(l.Game),
		DigitalAccount:   NewAccountResponse(l.DigitalAccount),
	}
}

func NewAccountResponse(a *ds.DigitalAccount) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID:        a.ID,
		StoreID:   a.StoreID,
		Email:     a.Email,
		ClientID:  a.ClientID,
		BirthDate: validation.FormatBirthDate(a.BirthDate),
		Client:    NewClientResponse(a.Client),
	}
}

func NewOrderResponse(o *ds.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	resp := &OrderResponse{
		ID:        o.ID,
		ClientID:  o.ClientID,
		Value:     o.Value,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		Client:    NewClientResponse(o.Client),
		Lines:     make([]OrderLineResponse, 0, len(o.Lines)),
	}
	for _, line := range o.Lines {
		resp.Lines = append(resp.Lines, OrderLineResponse{
			ID:        line.ID,
			LicenseID: line.LicenseID,
			License:   NewLicenseResponse(line.License),
		})
	}
	return resp
}

func NewUserResponse(u *ds.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		LevelID: u.LevelID,
		Level:   NewLevelResponse(u.Level),
	}
}

func NewDashboardResponse(d *repository.DashboardData) DashboardResponse {
	resp := DashboardResponse{
		Datas:            d.Dates,
		Valores:          d.Values,
		Quantidade:       d.OrderCount,
		Total:            d.Total,
		Contas:           d.Accounts,
		Licencas:         d.Licenses,
		LicencasAlugadas: d.Rented,
		LicencasLivres:   d.Free,
		TaxaOcupacao:     d.OccupancyRate,
		Top10:            make([]TopGameResponse, 0, len(d.Top10)),
	}
	for _, g := range d.Top10 {
		resp.Top10 = append(resp.Top10, TopGameResponse{Jogo: g.Game, Plataforma: g.Platform, Total: g.Total})
	}
	return resp
}

// Map converts a slice with the given element mapper.
func Map[T, R any](items []T, fn func(*T) *R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, *fn(&items[i]))
	}
	return out
}
