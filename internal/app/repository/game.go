package repository

import (
	"context"
	"errors"
	"fmt"

	"gamerental/internal/app/ds"

	"gorm.io/gorm"
)

// GameSearch filters games by substring of name and platform name and by license type.
// Empty fields do not filter.
type GameSearch struct {
	Name     string
	Platform string
	Type     string
}

func (r *Repository) GetAllGames(ctx context.Context) ([]ds.Game, error) {
	var games []ds.Game
	err := r.db.WithContext(ctx).
		Preload("Platform").
		Preload("Licenses", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&games).Error
	return games, err
}

func (r *Repository) GetGameByID(ctx context.Context, id uint) (*ds.Game, error) {
	return getByID[ds.Game](r.db.WithContext(ctx), id, "game", "Platform", "Licenses")
}

func (r *Repository) CreateGame(ctx context.Context, game *ds.Game) error {
	db := r.db.WithContext(ctx)
	if err := mustExist[ds.Platform](db, game.PlatformID, "platform"); err != nil {
		return err
	}
	if err := db.Create(game).Error; err != nil {
		return translate(err, "game not found")
	}
	return nil
}

func (r *Repository) UpdateGame(ctx context.Context, id uint, fields map[string]interface{}) error {
	db := r.db.WithContext(ctx)
	if platformID, ok := fields["platform_id"].(uint); ok {
		if err := mustExist[ds.Platform](db, platformID, "platform"); err != nil {
			return err
		}
	}
	return updateByID[ds.Game](db, id, "game", fields)
}

// DeleteGame removes a game without licenses and returns its image object name, if any.
func (r *Repository) DeleteGame(ctx context.Context, id uint) (*string, error) {
	db := r.db.WithContext(ctx)
	game, err := getByID[ds.Game](db, id, "game")
	if err != nil {
		return nil, err
	}
	if err := mustBeUnreferenced[ds.License](db, "game_id", id, "game %d still has licenses", id); err != nil {
		return nil, err
	}
	if err := deleteByID[ds.Game](db, id, "game"); err != nil {
		return nil, err
	}
	return game.Image, nil
}

// SetGameImage stores the new object name and returns the previous one.
func (r *Repository) SetGameImage(ctx context.Context, id uint, image string) (*string, error) {
	db := r.db.WithContext(ctx)
	game, err := getByID[ds.Game](db, id, "game")
	if err != nil {
		return nil, err
	}
	if err := db.Model(&ds.Game{}).Where("id = ?", id).Update("image", image).Error; err != nil {
		return nil, fmt.Errorf("set game image: %w", err)
	}
	return game.Image, nil
}

// SearchGames returns the games that still have an available license matching the search,
// each with its platform and only the oldest matching available license.
func (r *Repository) SearchGames(ctx context.Context, search GameSearch) ([]ds.Game, error) {
	db := r.db.WithContext(ctx)

	available := db.Model(&ds.License{}).
		Select("1").
		Where("licenses.game_id = games.id AND licenses.status = ?", ds.LicenseAvailable)
	if search.Type != "" {
		available = available.Where("licenses.type = ?", search.Type)
	}

	var games []ds.Game
	err := db.
		Joins("JOIN platforms ON platforms.id = games.platform_id").
		Where("LOWER(games.name) LIKE ? ESCAPE '\\'", containsPattern(search.Name)).
		Where("LOWER(platforms.name) LIKE ? ESCAPE '\\'", containsPattern(search.Platform)).
		Where("EXISTS (?)", available).
		Preload("Platform").
		Order("games.id").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}

	for i := range games {
		q := db.Where("game_id = ? AND status = ?", games[i].ID, ds.LicenseAvailable)
		if search.Type != "" {
			q = q.Where("type = ?", search.Type)
		}
		var license ds.License
		err := q.Order("id").First(&license).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// rented between the two queries
			games[i].Licenses = []ds.License{}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("first available license of game %d: %w", games[i].ID, err)
		}
		games[i].Licenses = []ds.License{license}
	}

	return games, nil
}
