package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilterTopicSources(t *testing.T) {
	names := []string{
		CollAircraft,
		CollKnowledgeBase,
		CollMessages,
		"maintenance_faqs",
		"CompanyKnowledgeArchive",
		"topic_index",
		"extra_content",
		"bookings",
	}

	sources := filterTopicSources(names)

	assert.ElementsMatch(t, []string{
		"maintenance_faqs",
		"CompanyKnowledgeArchive",
		"topic_index",
		"extra_content",
	}, sources)
}

func TestFilterTopicSourcesExcludesKnownCollections(t *testing.T) {
	// The knowledge base collection matches the naming pattern but is
	// already covered by its own lookup.
	sources := filterTopicSources([]string{CollKnowledgeBase, CollRFQs})
	assert.Empty(t, sources)
}

func TestSearchFilterShape(t *testing.T) {
	filter := searchFilter([]string{"manufacturer", "model"}, "boeing 737")

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)

	re, ok := or[0]["manufacturer"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "i", re.Options)
	assert.Contains(t, re.Pattern, "boeing 737")
}

func TestSearchFilterEscapesRegexMetacharacters(t *testing.T) {
	filter := searchFilter([]string{"title"}, "a320 (neo)?")

	or := filter["$or"].([]bson.M)
	re := or[0]["title"].(primitive.Regex)
	assert.Equal(t, `a320 \(neo\)\?`, re.Pattern)
}
