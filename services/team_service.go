package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dosada05/family-games/models"
	"github.com/Dosada05/family-games/repositories"
)

func (s *competitionService) ListTeams(ctx context.Context) []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneTeams(s.state.teams)
}

func (s *competitionService) GetTeam(ctx context.Context, teamID string) (*models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := teamIndex(s.state.teams, teamID)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}
	team := s.state.teams[idx].Clone()
	return &team, nil
}

func (s *competitionService) AddTeam(ctx context.Context, input TeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team := models.Team{
		ID:        newID(),
		Name:      name,
		Members:   cleanMembers(input.Members),
		CreatedAt: s.now().UTC(),
	}
	next := s.state.clone()
	next.teams = append(next.teams, team)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("Team added", "team_id", team.ID, "name", team.Name)
	s.notify(EventTeamsUpdated, "", models.CloneTeams(s.state.teams))
	return s.teamCopy(team.ID), nil
}

func (s *competitionService) UpdateTeam(ctx context.Context, teamID string, update TeamUpdate) (*models.Team, error) {
	var name string
	if update.Name != nil {
		name = strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, ErrTeamNameRequired
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := teamIndex(s.state.teams, teamID)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}

	next := s.state.clone()
	if update.Name != nil {
		next.teams[idx].Name = name
	}
	if update.Members != nil {
		next.teams[idx].Members = cleanMembers(update.Members)
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.notify(EventTeamsUpdated, "", models.CloneTeams(s.state.teams))
	return s.teamCopy(teamID), nil
}

// DeleteTeam removes a team. Placements that still name it no longer earn
// anybody points.
func (s *competitionService) DeleteTeam(ctx context.Context, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := teamIndex(s.state.teams, teamID)
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}

	next := s.state.clone()
	next.teams = append(next.teams[:idx], next.teams[idx+1:]...)
	if err := s.commit(ctx, next, repositories.KeyTeams); err != nil {
		return err
	}

	s.logger.Info("Team deleted", "team_id", teamID)
	s.notify(EventTeamsUpdated, "", models.CloneTeams(s.state.teams))
	return nil
}

// teamCopy reads a team from the live state. Callers hold s.mu.
func (s *competitionService) teamCopy(teamID string) *models.Team {
	idx := teamIndex(s.state.teams, teamID)
	if idx == -1 {
		return nil
	}
	team := s.state.teams[idx].Clone()
	return &team
}
