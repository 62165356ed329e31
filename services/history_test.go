package services

import (
	"testing"
	"time"

	"MediSearchAU/config/db"
	"MediSearchAU/models"
	"MediSearchAU/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const historyNS = "medical_search." + util.SearchHistoryCollection

func bindMock(mt *mtest.T) {
	db.Bind(mt.Client, "medical_search")
	mt.Cleanup(func() { db.Bind(nil, "") })
}

func insertedQueries(mt *mtest.T) []string {
	queries := []string{}
	for _, evt := range mt.GetAllStartedEvents() {
		if evt.CommandName != "insert" {
			continue
		}
		assert.Equal(mt.T, util.SearchHistoryCollection, evt.Command.Lookup("insert").StringValue())
		docs, err := evt.Command.Lookup("documents").Array().Values()
		require.NoError(mt.T, err)
		for _, doc := range docs {
			queries = append(queries, doc.Document().Lookup("query").StringValue())
		}
	}
	return queries
}

func TestSearchPBS_AppendsExactlyOneHistoryEntry(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("one insert per search", func(mt *mtest.T) {
		bindMock(mt)

		srv := newPBSStub(mt.T, `{"results":[{"medicine_name":"Aspirin 100mg Tablets","pbs_code":"5678B"}]}`)
		defer srv.Close()
		restore := *pbsClient
		*pbsClient = PBSClient{BaseURL: srv.URL, HTTPClient: srv.Client()}
		defer func() { *pbsClient = restore }()

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		results, err := SearchPBS(testContext(), models.MedicationSearchCreate{Query: "Aspirin"})
		require.NoError(mt.T, err)
		require.Len(mt.T, results, 1)

		assert.Equal(mt.T, []string{"Aspirin"}, insertedQueries(mt))
	})
}

func TestSearchPBS_EmptyQueryWritesNoHistoryEntry(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no insert on invalid input", func(mt *mtest.T) {
		bindMock(mt)

		_, err := SearchPBS(testContext(), models.MedicationSearchCreate{Query: "   "})
		require.Error(mt.T, err)

		assert.Empty(mt.T, insertedQueries(mt))
	})
}

func TestSequentialSearches_HistoryNewestFirst(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("aspirin then insulin", func(mt *mtest.T) {
		bindMock(mt)

		srv := newPBSStub(mt.T, `{"results":[
			{"medicine_name":"Aspirin 100mg Tablets","pbs_code":"5678B"},
			{"medicine_name":"Insulin Human Injection","pbs_code":"9012C"}
		]}`)
		defer srv.Close()
		restore := *pbsClient
		*pbsClient = PBSClient{BaseURL: srv.URL, HTTPClient: srv.Client()}
		defer func() { *pbsClient = restore }()

		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		_, err := SearchPBS(testContext(), models.MedicationSearchCreate{Query: "Aspirin"})
		require.NoError(mt.T, err)
		_, err = SearchPBS(testContext(), models.MedicationSearchCreate{Query: "Insulin"})
		require.NoError(mt.T, err)

		assert.Equal(mt.T, []string{"Aspirin", "Insulin"}, insertedQueries(mt))

		now := time.Now().UTC()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, historyNS, mtest.FirstBatch,
			bson.D{
				{Key: "id", Value: "b2d9f6c0-0000-0000-0000-000000000002"},
				{Key: "query", Value: "Insulin"},
				{Key: "search_type", Value: models.SearchTypePBS},
				{Key: "timestamp", Value: now},
			},
			bson.D{
				{Key: "id", Value: "b2d9f6c0-0000-0000-0000-000000000001"},
				{Key: "query", Value: "Aspirin"},
				{Key: "search_type", Value: models.SearchTypePBS},
				{Key: "timestamp", Value: now.Add(-time.Minute)},
			},
		))

		history, err := GetHistory(testContext())
		require.NoError(mt.T, err)
		require.Len(mt.T, history, 2)
		assert.Equal(mt.T, "Insulin", history[0].Query)
		assert.Equal(mt.T, "Aspirin", history[1].Query)
		assert.True(mt.T, history[0].Timestamp.After(history[1].Timestamp))
	})
}

func TestGetHistory_SortsNewestFirstAndCapsRead(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find options", func(mt *mtest.T) {
		bindMock(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, historyNS, mtest.FirstBatch))

		history, err := GetHistory(testContext())
		require.NoError(mt.T, err)
		assert.Empty(mt.T, history)

		var find *event.CommandStartedEvent
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "find" {
				find = evt
			}
		}
		require.NotNil(mt.T, find)
		assert.Equal(mt.T, util.SearchHistoryCollection, find.Command.Lookup("find").StringValue())
		assert.Equal(mt.T, int32(-1), find.Command.Lookup("sort").Document().Lookup("timestamp").Int32())
		limit, ok := find.Command.Lookup("limit").Int64OK()
		require.True(mt.T, ok)
		assert.Equal(mt.T, int64(historyReadLimit), limit)
	})
}

func TestClearHistory_DropsLogAndCachedLookups(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("clear succeeds without redis", func(mt *mtest.T) {
		bindMock(mt)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, historyNS, mtest.FirstBatch,
				bson.D{{Key: "id", Value: "a"}, {Key: "query", Value: "Aspirin"}},
				bson.D{{Key: "id", Value: "b"}, {Key: "query", Value: "aspirin"}},
			),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
		)

		msg, err := ClearHistory(testContext())
		require.NoError(mt.T, err)
		assert.Equal(mt.T, "Cleared successfully", msg)

		var deleteEvt *event.CommandStartedEvent
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "delete" {
				deleteEvt = evt
			}
		}
		require.NotNil(mt.T, deleteEvt)
		assert.Equal(mt.T, util.SearchHistoryCollection, deleteEvt.Command.Lookup("delete").StringValue())
	})
}
