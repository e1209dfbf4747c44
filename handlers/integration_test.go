// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quiz-night/game"
	"github.com/danielhkuo/quiz-night/models"
	"github.com/danielhkuo/quiz-night/testutil"
)

// TestFullGameRound tests the complete end-to-end round:
// 1. Moderator creates a question
// 2. Teams form and members join
// 3. Question goes active, teams submit answers
// 4. Voting opens, members vote for other teams
// 5. Question finishes
// 6. Results and scoreboard reflect the payouts
func TestFullGameRound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	svc := game.NewService(db, nil)

	questionHandler := NewQuestionHandler(svc, cfg)
	teamHandler := NewTeamHandler(db)
	memberHandler := NewMemberHandler(db)
	answerHandler := NewAnswerHandler(svc)
	voteHandler := NewVoteHandler(svc)
	resultsHandler := NewResultsHandler(svc)
	scoreboardHandler := NewScoreboardHandler(db)

	key := moderatorKey(t)

	// Step 1: Moderator creates a question.
	req := testutil.MakeRequest("POST", "/questions", models.CreateQuestionRequest{
		Title:      "Funniest team motto?",
		AnswerKind: models.KindText,
	}, map[string]string{HeaderModeratorKey: key})
	w := httptest.NewRecorder()
	questionHandler.Create(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create question failed: %d - %s", w.Code, w.Body.String())
	}

	var question models.Question
	testutil.AssertJSON(t, w, &question)
	t.Logf("Step 1 - Created question: %s", question.ID)

	// Step 2: Two teams form, two members each.
	teams := make([]string, 2)
	members := make([][]string, 2)
	for i, name := range []string{"Alpha", "Bravo"} {
		req = testutil.MakeRequest("POST", "/teams", models.CreateTeamRequest{Name: name}, nil)
		w = httptest.NewRecorder()
		teamHandler.Create(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Create team %s failed: %d", name, w.Code)
		}
		var team models.Team
		testutil.AssertJSON(t, w, &team)
		teams[i] = team.ID

		for j := 0; j < 2; j++ {
			req = testutil.MakeRequest("POST", "/members", models.JoinRequest{
				Name:   name + " player",
				TeamID: team.ID,
			}, nil)
			w = httptest.NewRecorder()
			memberHandler.Join(w, req)
			if w.Code != http.StatusCreated {
				t.Fatalf("Step 2 - Join failed: %d", w.Code)
			}
			var joined models.JoinResponse
			testutil.AssertJSON(t, w, &joined)
			members[i] = append(members[i], joined.ID)
		}
	}
	t.Logf("Step 2 - Created 2 teams with 2 members each")

	// Step 3: Activate the question; both teams answer.
	req = testutil.MakeRequest("PATCH", "/questions/"+question.ID+"/status",
		models.AdvanceStatusRequest{Status: models.StatusActive},
		map[string]string{HeaderModeratorKey: key})
	req.SetPathValue("id", question.ID)
	w = httptest.NewRecorder()
	questionHandler.AdvanceStatus(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 3 - Activate failed: %d - %s", w.Code, w.Body.String())
	}

	optionIDs := make([]string, 2)
	for i, teamID := range teams {
		req = testutil.MakeRequest("POST", "/questions/"+question.ID+"/options",
			models.SubmitAnswerRequest{Content: "motto of team " + teamID},
			map[string]string{HeaderTeamID: teamID})
		req.SetPathValue("id", question.ID)
		w = httptest.NewRecorder()
		answerHandler.Submit(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 3 - Submit answer failed: %d - %s", w.Code, w.Body.String())
		}
		var option models.Option
		testutil.AssertJSON(t, w, &option)
		optionIDs[i] = option.ID
	}
	t.Logf("Step 3 - Both teams answered")

	// Step 4: Voting opens; everyone votes for the other team's answer.
	req = testutil.MakeRequest("PATCH", "/questions/"+question.ID+"/status",
		models.AdvanceStatusRequest{Status: models.StatusVoting},
		map[string]string{HeaderModeratorKey: key})
	req.SetPathValue("id", question.ID)
	w = httptest.NewRecorder()
	questionHandler.AdvanceStatus(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Open voting failed: %d", w.Code)
	}

	// Both Alpha members vote Bravo; one Bravo member votes Alpha.
	votes := []struct {
		memberID string
		optionID string
	}{
		{members[0][0], optionIDs[1]},
		{members[0][1], optionIDs[1]},
		{members[1][0], optionIDs[0]},
	}
	for _, v := range votes {
		req = testutil.MakeRequest("POST", "/questions/"+question.ID+"/votes",
			models.CastVoteRequest{OptionID: v.optionID},
			map[string]string{HeaderMemberID: v.memberID})
		req.SetPathValue("id", question.ID)
		w = httptest.NewRecorder()
		voteHandler.Cast(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 4 - Vote failed: %d - %s", w.Code, w.Body.String())
		}
	}
	t.Logf("Step 4 - 3 votes cast")

	// Results are still sealed.
	req = testutil.MakeRequest("GET", "/questions/"+question.ID+"/results", nil, nil)
	req.SetPathValue("id", question.ID)
	w = httptest.NewRecorder()
	resultsHandler.Get(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("Step 4 - Expected sealed results (409), got %d", w.Code)
	}

	// Step 5: Finish the question.
	req = testutil.MakeRequest("PATCH", "/questions/"+question.ID+"/status",
		models.AdvanceStatusRequest{Status: models.StatusFinished},
		map[string]string{HeaderModeratorKey: key})
	req.SetPathValue("id", question.ID)
	w = httptest.NewRecorder()
	questionHandler.AdvanceStatus(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Finish failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 6: Results: Bravo first with 2 votes (300), Alpha second (100).
	req = testutil.MakeRequest("GET", "/questions/"+question.ID+"/results", nil, nil)
	req.SetPathValue("id", question.ID)
	w = httptest.NewRecorder()
	resultsHandler.Get(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - Results failed: %d - %s", w.Code, w.Body.String())
	}

	var results models.QuestionResults
	testutil.AssertJSON(t, w, &results)
	if len(results.Results) != 2 {
		t.Fatalf("Step 6 - Expected 2 results, got %d", len(results.Results))
	}
	if results.Results[0].TeamID != teams[1] || results.Results[0].PointsEarned != 300 {
		t.Errorf("Step 6 - Expected Bravo first with 300 points, got %s with %d",
			results.Results[0].TeamName, results.Results[0].PointsEarned)
	}
	if results.Results[1].TeamID != teams[0] || results.Results[1].PointsEarned != 100 {
		t.Errorf("Step 6 - Expected Alpha second with 100 points, got %s with %d",
			results.Results[1].TeamName, results.Results[1].PointsEarned)
	}
	if results.TotalVotes != 3 {
		t.Errorf("Step 6 - Expected 3 total votes, got %d", results.TotalVotes)
	}

	// Scoreboard agrees with the payouts.
	req = testutil.MakeRequest("GET", "/scoreboard", nil, nil)
	w = httptest.NewRecorder()
	scoreboardHandler.Get(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - Scoreboard failed: %d", w.Code)
	}

	var board models.Scoreboard
	testutil.AssertJSON(t, w, &board)
	if board.Teams[0].TeamID != teams[1] || board.Teams[0].Score != 300 {
		t.Errorf("Step 6 - Expected Bravo leading with 300, got %s with %d",
			board.Teams[0].TeamName, board.Teams[0].Score)
	}
	if board.CompletedQuestions != 1 {
		t.Errorf("Step 6 - Expected 1 completed question, got %d", board.CompletedQuestions)
	}

	t.Logf("Step 6 - Round complete: Bravo 300, Alpha 100")
}
