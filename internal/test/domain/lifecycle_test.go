package domain_test

import (
	"testing"

	"creatorops-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestIdeaStatus_SuccessorChain(t *testing.T) {
	// Walking advance from draft visits every ordered stage exactly once
	// and stops at published.
	visited := []domain.IdeaStatus{domain.IdeaDraft}
	current := domain.IdeaDraft
	for {
		next, ok := current.Next()
		if !ok {
			break
		}
		visited = append(visited, next)
		current = next
	}

	assert.Equal(t, domain.IdeaStatusOrder, visited)
	assert.Equal(t, domain.IdeaPublished, current)
}

func TestIdeaStatus_TerminalStagesHaveNoSuccessor(t *testing.T) {
	_, ok := domain.IdeaPublished.Next()
	assert.False(t, ok)

	_, ok = domain.IdeaArchived.Next()
	assert.False(t, ok)
}

func TestIdeaStatus_Valid(t *testing.T) {
	for _, status := range domain.IdeaStatusOrder {
		assert.True(t, status.Valid(), "expected %s to be valid", status)
	}
	assert.True(t, domain.IdeaArchived.Valid())

	assert.False(t, domain.IdeaStatus("shipped").Valid())
	assert.False(t, domain.IdeaStatus("").Valid())
}

func TestIdeaStatus_MetaCoversEveryStatus(t *testing.T) {
	for _, status := range append(domain.IdeaStatusOrder, domain.IdeaArchived) {
		meta := status.Meta()
		assert.NotEmpty(t, meta.Label, "missing label for %s", status)
		assert.NotEmpty(t, meta.Color, "missing color for %s", status)
	}
}

func TestProductionStatuses(t *testing.T) {
	expected := []domain.IdeaStatus{
		domain.IdeaScripted,
		domain.IdeaPlanned,
		domain.IdeaToFilm,
		domain.IdeaFilmed,
		domain.IdeaEditing,
	}
	assert.Equal(t, expected, domain.ProductionStatuses)
}

func TestPriority(t *testing.T) {
	assert.True(t, domain.PriorityHigh.Valid())
	assert.True(t, domain.PriorityLow.Valid())
	assert.False(t, domain.Priority(0).Valid())
	assert.False(t, domain.Priority(4).Valid())

	assert.Equal(t, "High", domain.PriorityHigh.Label())
	assert.Equal(t, "", domain.Priority(7).Label())
}

func TestBrollStatus_Toggle(t *testing.T) {
	assert.Equal(t, domain.BrollFilmed, domain.BrollNeeded.Toggle())
	assert.Equal(t, domain.BrollNeeded, domain.BrollFilmed.Toggle())
}

func TestDealStatus_PipelineStages(t *testing.T) {
	assert.Len(t, domain.PipelineStages, 6)

	for _, stage := range domain.PipelineStages {
		assert.True(t, stage.Valid())
		assert.NotEqual(t, domain.DealLost, stage)
		assert.NotEqual(t, domain.DealCancelled, stage)
	}

	// The terminals stay valid statuses even though they have no column.
	assert.True(t, domain.DealLost.Valid())
	assert.True(t, domain.DealCancelled.Valid())
}

func TestPlannerItemType_Defaults(t *testing.T) {
	assert.Equal(t, "09:00", domain.DefaultFilmingTime)
	assert.Equal(t, "12:00", domain.DefaultPublishingTime)

	assert.True(t, domain.SlotFilming.Valid())
	assert.True(t, domain.SlotPublishing.Valid())
	assert.False(t, domain.PlannerItemType("holiday").Valid())
}
