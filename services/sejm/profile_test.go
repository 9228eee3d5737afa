package sejm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sejmdata-backend/services/declarations"

	"github.com/stretchr/testify/require"
)

func sejmAPIStub() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/MP", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":241,"firstName":"Andrzej","lastName":"Adamczyk","club":"PiS","birthDate":"1970-01-15","active":true},
			{"id":7,"firstName":"Jan","lastName":"Kowalski"}
		]`))
	})
	mux.HandleFunc("/MP/241/votings/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"numVotings":10,"numVoted":8,"numMissed":2},
			{"numVotings":5,"numVoted":5,"numMissed":0}
		]`))
	})
	mux.HandleFunc("/interpellations", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("from") != "241" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`[{"num":1,"title":"a"},{"num":2,"title":"b"},{"num":3}]`))
	})
	mux.HandleFunc("/writtenQuestions", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("from") != "241" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`[{"num":9,"title":"q"}]`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return mux
}

func TestProfile(t *testing.T) {
	client := newTestClient(t, sejmAPIStub(), declarations.NewStatic())

	profile, err := client.Profile(context.Background(), 241)
	require.NoError(t, err)

	require.Equal(t, "Andrzej Adamczyk", profile.FirstLastName)
	require.Equal(t, VotingStats{TotalVotings: 15, Voted: 13, Missed: 2, PresencePct: 87}, profile.Stats)
	require.Equal(t, 87, profile.PresencePct)
	require.Equal(t, 3, profile.InterpellationsCount)
	require.Equal(t, 1, profile.QuestionsCount)
	require.NotNil(t, profile.FinancialDeclaration)
	require.Equal(t, "ANDRZEJ ADAMCZYK", profile.FinancialDeclaration.FullName)
	require.Greater(t, profile.Age, 0)
}

func TestProfileUnknownMP(t *testing.T) {
	client := newTestClient(t, sejmAPIStub(), declarations.NewStatic())

	_, err := client.Profile(context.Background(), 999)
	require.ErrorIs(t, err, ErrMPNotFound)
}

type failingDeclarations struct{}

func (failingDeclarations) Lookup(ctx context.Context, mpID int) (*declarations.Declaration, bool, error) {
	return nil, false, errors.New("extraction pipeline offline")
}

func TestProfileDegradesDeclarationFailure(t *testing.T) {
	client := newTestClient(t, sejmAPIStub(), failingDeclarations{})

	profile, err := client.Profile(context.Background(), 241)
	require.NoError(t, err)

	// the composite still comes back complete, just without the
	// declaration
	require.Nil(t, profile.FinancialDeclaration)
	require.Equal(t, 15, profile.Stats.TotalVotings)
	require.Equal(t, 3, profile.InterpellationsCount)
}

func TestProfileNoDeclarationOnRecord(t *testing.T) {
	client := newTestClient(t, sejmAPIStub(), declarations.NewStatic())

	profile, err := client.Profile(context.Background(), 7)
	require.NoError(t, err)
	require.Nil(t, profile.FinancialDeclaration)
	require.Equal(t, VotingStats{}, profile.Stats)
}
