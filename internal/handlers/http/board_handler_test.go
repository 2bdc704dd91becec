package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/ports"
	"github.com/rafabene/teamboard-backend/internal/handlers/dto"
	"github.com/rafabene/teamboard-backend/internal/services"
)

type memBoardRepo struct {
	boards map[string]*entities.Board
}

func newMemBoardRepo() *memBoardRepo {
	return &memBoardRepo{boards: make(map[string]*entities.Board)}
}

func (r *memBoardRepo) Create(ctx context.Context, board *entities.Board) error {
	if board.ID == "" {
		board.ID = uuid.NewString()
	}
	copied := *board
	r.boards[board.ID] = &copied
	return nil
}

func (r *memBoardRepo) FindByID(ctx context.Context, id string) (*entities.Board, error) {
	board, ok := r.boards[id]
	if !ok || board.IsDeleted() {
		return nil, nil
	}
	copied := *board
	return &copied, nil
}

func (r *memBoardRepo) ListByUser(ctx context.Context, userID string) ([]*entities.Board, error) {
	var boards []*entities.Board
	for _, board := range r.boards {
		if !board.IsDeleted() && board.IsMember(userID) {
			copied := *board
			boards = append(boards, &copied)
		}
	}
	return boards, nil
}

func (r *memBoardRepo) Update(ctx context.Context, board *entities.Board) error {
	copied := *board
	r.boards[board.ID] = &copied
	return nil
}

func (r *memBoardRepo) Delete(ctx context.Context, id string) error {
	if board, ok := r.boards[id]; ok {
		board.SoftDelete()
	}
	return nil
}

func (r *memBoardRepo) AddMembers(ctx context.Context, boardID string, userIDs []string) error {
	board, ok := r.boards[boardID]
	if !ok {
		return fmt.Errorf("board %s not found", boardID)
	}
	for _, id := range userIDs {
		board.Members = append(board.Members, entities.User{ID: id})
	}
	return nil
}

type memNotifier struct {
	pushed map[string][]ports.Notification
}

func newMemNotifier() *memNotifier {
	return &memNotifier{pushed: make(map[string][]ports.Notification)}
}

func (n *memNotifier) Push(userID string, notification ports.Notification) {
	n.pushed[userID] = append(n.pushed[userID], notification)
}

func setupBoardRouter(t *testing.T, userRepo *memUserRepo, boardRepo *memBoardRepo, notifier *memNotifier, callerID string) *gin.Engine {
	t.Helper()

	boardService := services.NewBoardService(boardRepo, userRepo, memUoW{}, notifier, memLogger{})
	handler := NewBoardHandler(boardService)

	router := gin.New()
	router.Use(withI18n(t))
	boards := router.Group("/boards", asUser(userRepo, callerID))
	boards.POST("", handler.CreateBoard)
	boards.GET("", handler.ListBoards)
	boards.GET("/:id", handler.GetBoard)
	boards.PATCH("/:id", handler.UpdateBoard)
	boards.DELETE("/:id", handler.DeleteBoard)
	boards.POST("/:id/members", handler.InviteMembers)
	return router
}

func TestBoardHandler_CreateBoard(t *testing.T) {
	t.Run("cria board com convites e devolve emails desconhecidos", func(t *testing.T) {
		userRepo := newMemUserRepo()
		owner := seedWithUUID(t, userRepo, "maria", "maria@example.com", entities.RoleUser)
		member := seedWithUUID(t, userRepo, "joao", "joao@example.com", entities.RoleUser)
		notifier := newMemNotifier()
		router := setupBoardRouter(t, userRepo, newMemBoardRepo(), notifier, owner.ID)

		w := doJSON(router, http.MethodPost, "/boards", gin.H{
			"name":         "Projeto X",
			"inviteEmails": []string{"joao@example.com", "ghost@example.com"},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("esperava 201, obteve %d: %s", w.Code, w.Body.String())
		}

		var result dto.BoardInviteResponse
		if err := json.Unmarshal(decodeEnvelope(t, w).Data, &result); err != nil {
			t.Fatalf("falha ao decodificar: %v", err)
		}
		if result.Board.OwnerID != owner.ID {
			t.Errorf("esperava dono '%s', obteve '%s'", owner.ID, result.Board.OwnerID)
		}
		if len(result.Invited) != 1 {
			t.Errorf("esperava 1 convidado, obteve %d", len(result.Invited))
		}
		if len(result.UnknownEmails) != 1 || result.UnknownEmails[0] != "ghost@example.com" {
			t.Errorf("esperava [ghost@example.com], obteve %v", result.UnknownEmails)
		}
		if _, ok := notifier.pushed[member.ID]; !ok {
			t.Error("esperava notificação para o convidado")
		}
	})

	t.Run("auto-convite retorna 400", func(t *testing.T) {
		userRepo := newMemUserRepo()
		owner := seedWithUUID(t, userRepo, "maria", "maria@example.com", entities.RoleUser)
		router := setupBoardRouter(t, userRepo, newMemBoardRepo(), newMemNotifier(), owner.ID)

		w := doJSON(router, http.MethodPost, "/boards", gin.H{
			"name":         "Projeto X",
			"inviteEmails": []string{"maria@example.com"},
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperava 400, obteve %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestBoardHandler_Permissions(t *testing.T) {
	userRepo := newMemUserRepo()
	owner := seedWithUUID(t, userRepo, "maria", "maria@example.com", entities.RoleUser)
	stranger := seedWithUUID(t, userRepo, "ana", "ana@example.com", entities.RoleUser)
	boardRepo := newMemBoardRepo()

	board := &entities.Board{Name: "Projeto X", OwnerID: owner.ID}
	if err := boardRepo.Create(t.Context(), board); err != nil {
		t.Fatalf("falha ao criar board: %v", err)
	}

	t.Run("não-membro não vê o board", func(t *testing.T) {
		router := setupBoardRouter(t, userRepo, boardRepo, newMemNotifier(), stranger.ID)

		w := doJSON(router, http.MethodGet, "/boards/"+board.ID, nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("esperava 403, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("não-dono não convida membros", func(t *testing.T) {
		router := setupBoardRouter(t, userRepo, boardRepo, newMemNotifier(), stranger.ID)

		w := doJSON(router, http.MethodPost, "/boards/"+board.ID+"/members", gin.H{
			"emails": []string{"ana@example.com"},
		})
		if w.Code != http.StatusForbidden {
			t.Fatalf("esperava 403, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("dono deleta o board com 204", func(t *testing.T) {
		router := setupBoardRouter(t, userRepo, boardRepo, newMemNotifier(), owner.ID)

		w := doJSON(router, http.MethodDelete, "/boards/"+board.ID, nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("esperava 204, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("board inexistente retorna 404", func(t *testing.T) {
		router := setupBoardRouter(t, userRepo, boardRepo, newMemNotifier(), owner.ID)

		w := doJSON(router, http.MethodGet, "/boards/"+uuid.NewString(), nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("esperava 404, obteve %d: %s", w.Code, w.Body.String())
		}
	})
}
