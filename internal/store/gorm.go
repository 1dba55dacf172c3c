package store

import (
	"errors"

	"github.com/faizuddin0019/werwolf-sub002/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on top of a gorm-managed Postgres database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

func (s *GormStore) CreateGameSession(game *models.Game, host *models.Player, state *models.RoundState) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(game).Error; err != nil {
			return err
		}
		if err := tx.Create(host).Error; err != nil {
			return err
		}
		return tx.Create(state).Error
	}))
}

func (s *GormStore) GameByID(id string) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

func (s *GormStore) GameByCode(code string) (*models.Game, error) {
	var game models.Game
	if err := s.db.Where("code = ?", code).Order("created_at DESC").First(&game).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

func (s *GormStore) GameByCodeOnDay(code, day string) (*models.Game, error) {
	var game models.Game
	if err := s.db.Where("code = ? AND code_day = ?", code, day).First(&game).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

func (s *GormStore) SaveGame(game *models.Game) error {
	return translate(s.db.Save(game).Error)
}

func (s *GormStore) CreatePlayer(player *models.Player) error {
	return translate(s.db.Create(player).Error)
}

func (s *GormStore) PlayerByID(id string) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &player, nil
}

func (s *GormStore) PlayerByClient(gameID, clientID string) (*models.Player, error) {
	var player models.Player
	if err := s.db.Where("game_id = ? AND client_id = ?", gameID, clientID).First(&player).Error; err != nil {
		return nil, translate(err)
	}
	return &player, nil
}

func (s *GormStore) PlayersByGame(gameID string) ([]models.Player, error) {
	var players []models.Player
	if err := s.db.Where("game_id = ?", gameID).Order("join_order ASC").Find(&players).Error; err != nil {
		return nil, translate(err)
	}
	return players, nil
}

func (s *GormStore) SavePlayer(player *models.Player) error {
	return translate(s.db.Save(player).Error)
}

func (s *GormStore) DeletePlayer(id string) error {
	return translate(s.db.Delete(&models.Player{}, "id = ?", id).Error)
}

func (s *GormStore) RoundState(gameID string) (*models.RoundState, error) {
	var state models.RoundState
	if err := s.db.First(&state, "game_id = ?", gameID).Error; err != nil {
		return nil, translate(err)
	}
	return &state, nil
}

func (s *GormStore) SaveRoundState(state *models.RoundState) error {
	return translate(s.db.Save(state).Error)
}

func (s *GormStore) UpsertVote(vote *models.Vote) error {
	return translate(s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}, {Name: "round"}, {Name: "voter_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"target_id", "updated_at"}),
	}).Create(vote).Error)
}

func (s *GormStore) VotesByRound(gameID string, round int) ([]models.Vote, error) {
	var votes []models.Vote
	if err := s.db.Where("game_id = ? AND round = ?", gameID, round).Find(&votes).Error; err != nil {
		return nil, translate(err)
	}
	return votes, nil
}

func (s *GormStore) DeleteVotesByRound(gameID string, round int) error {
	return translate(s.db.Where("game_id = ? AND round = ?", gameID, round).Delete(&models.Vote{}).Error)
}

func (s *GormStore) DeleteVotesForPlayer(gameID, playerID string) error {
	return translate(s.db.Where("game_id = ? AND (voter_id = ? OR target_id = ?)", gameID, playerID, playerID).Delete(&models.Vote{}).Error)
}

func (s *GormStore) CreateLeaveRequest(req *models.LeaveRequest) error {
	return translate(s.db.Create(req).Error)
}

func (s *GormStore) PendingLeaveRequests(gameID string) ([]models.LeaveRequest, error) {
	var reqs []models.LeaveRequest
	if err := s.db.Where("game_id = ? AND status = ?", gameID, models.LeavePending).Find(&reqs).Error; err != nil {
		return nil, translate(err)
	}
	return reqs, nil
}

func (s *GormStore) PendingLeaveRequestForPlayer(gameID, playerID string) (*models.LeaveRequest, error) {
	var req models.LeaveRequest
	if err := s.db.Where("game_id = ? AND player_id = ? AND status = ?", gameID, playerID, models.LeavePending).First(&req).Error; err != nil {
		return nil, translate(err)
	}
	return &req, nil
}

func (s *GormStore) SaveLeaveRequest(req *models.LeaveRequest) error {
	return translate(s.db.Save(req).Error)
}
