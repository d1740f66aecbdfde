package team

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTeamListerListByEvent(t *testing.T) {
	repo := newMemoryRepository()
	owner := uuid.New()
	eventID := uuid.New()

	team := seedTeam(t, repo, owner, 2, true)
	team.EventID = eventID
	require.NoError(t, repo.UpdateTeam(team))
	seedMember(t, repo, team.ID, uuid.New())
	seedMember(t, repo, team.ID, uuid.New())

	// A team under a different event must not leak into the listing.
	seedTeam(t, repo, owner, 5, true)

	lister := NewEventTeamLister(repo)
	briefs, err := lister.ListByEvent(eventID)
	require.NoError(t, err)
	require.Len(t, briefs, 1)

	brief := briefs[0]
	assert.Equal(t, team.ID, brief.ID)
	assert.Equal(t, owner, brief.OwnerID)
	assert.Equal(t, 2, brief.MaxSize)
	assert.Equal(t, 2, brief.CurrentSize)
	assert.True(t, brief.IsFull)

	empty, err := lister.ListByEvent(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
