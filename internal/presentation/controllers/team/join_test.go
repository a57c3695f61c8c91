package team

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/splitteam/expense-backend/internal/domain/models"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTeamRepo struct {
	byJoinCode map[string]*models.Team
	added      []primitive.ObjectID
}

func (f *fakeTeamRepo) FindByJoinCode(code string) (*models.Team, error) {
	team, ok := f.byJoinCode[code]
	if !ok {
		return nil, nil
	}
	copied := *team
	copied.MemberIds = append([]primitive.ObjectID{}, team.MemberIds...)
	return &copied, nil
}

func (f *fakeTeamRepo) AddMember(teamId primitive.ObjectID, userId primitive.ObjectID) error {
	f.added = append(f.added, userId)
	return nil
}

type fakeUserTeams struct {
	linked []primitive.ObjectID
}

func (f *fakeUserTeams) AddTeam(userId primitive.ObjectID, teamId primitive.ObjectID) error {
	f.linked = append(f.linked, teamId)
	return nil
}

func joinRequest(body string, userId primitive.ObjectID) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodPost, "/team/join", strings.NewReader(body))
	req.Header.Set("UserId", userId.Hex())
	return presentationProtocols.HttpRequest{
		Body:   io.NopCloser(strings.NewReader(body)),
		Header: req.Header,
		Req:    req,
	}
}

func TestJoinTeamController(t *testing.T) {
	owner := primitive.NewObjectID()
	joiner := primitive.NewObjectID()
	team := &models.Team{
		Id:        primitive.NewObjectID(),
		TeamName:  "trip",
		OwnerId:   owner,
		JoinCode:  "AB12CD34",
		MemberIds: []primitive.ObjectID{owner},
	}

	tests := []struct {
		name       string
		body       string
		userId     primitive.ObjectID
		wantStatus int
		wantAdded  int
	}{
		{
			name:       "joins an existing team",
			body:       `{"joinCode":"AB12CD34"}`,
			userId:     joiner,
			wantStatus: http.StatusOK,
			wantAdded:  1,
		},
		{
			name:       "join code is case-insensitive",
			body:       `{"joinCode":"ab12cd34"}`,
			userId:     joiner,
			wantStatus: http.StatusOK,
			wantAdded:  1,
		},
		{
			name:       "existing member is not re-added",
			body:       `{"joinCode":"AB12CD34"}`,
			userId:     owner,
			wantStatus: http.StatusOK,
			wantAdded:  0,
		},
		{
			name:       "unknown join code",
			body:       `{"joinCode":"ZZZZZZZZ"}`,
			userId:     joiner,
			wantStatus: http.StatusNotFound,
			wantAdded:  0,
		},
		{
			name:       "join code with wrong length",
			body:       `{"joinCode":"AB12"}`,
			userId:     joiner,
			wantStatus: http.StatusUnprocessableEntity,
			wantAdded:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams := &fakeTeamRepo{byJoinCode: map[string]*models.Team{team.JoinCode: team}}
			users := &fakeUserTeams{}
			controller := NewJoinTeamController(teams, teams, users)

			response := controller.Handle(joinRequest(tt.body, tt.userId))
			if response.StatusCode != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, response.StatusCode)
			}
			if len(teams.added) != tt.wantAdded {
				t.Errorf("expected %d member additions, got %d", tt.wantAdded, len(teams.added))
			}
			if len(users.linked) != tt.wantAdded {
				t.Errorf("expected %d user links, got %d", tt.wantAdded, len(users.linked))
			}

			if tt.wantStatus == http.StatusOK {
				var body models.Team
				if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode response body: %v", err)
				}
				if !body.HasMember(tt.userId) {
					t.Error("expected the joining user in the returned member list")
				}
			}
		})
	}
}
