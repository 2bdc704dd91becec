package services

import (
	"context"
	goerrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
	"github.com/rafabene/teamboard-backend/internal/domain/errors"
	"github.com/rafabene/teamboard-backend/internal/domain/ports"
	"github.com/rafabene/teamboard-backend/internal/domain/valueobjects"
)

var _ = Describe("BoardService", func() {
	var (
		ctx       context.Context
		userRepo  *fakeUserRepo
		boardRepo *fakeBoardRepo
		notifier  *fakeNotifier
		service   *BoardService
		owner     *entities.User
		member    *entities.User
	)

	mustUser := func(username, email string) *entities.User {
		emailVO, err := valueobjects.NewEmail(email)
		Expect(err).NotTo(HaveOccurred())

		user := &entities.User{
			FullName: "Usuário " + username,
			Username: username,
			Email:    emailVO,
			Role:     entities.RoleUser,
		}
		Expect(userRepo.Create(ctx, user)).To(Succeed())
		return user
	}

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		boardRepo = newFakeBoardRepo()
		notifier = newFakeNotifier()
		service = NewBoardService(boardRepo, userRepo, fakeUoW{}, notifier, nopLogger{})

		owner = mustUser("maria", "maria@example.com")
		member = mustUser("joao", "joao@example.com")
	})

	Describe("CreateBoard", func() {
		It("cria o board com o caller como dono", func() {
			board, outcome, err := service.CreateBoard(ctx, owner, CreateBoardInput{
				Name:        "Projeto X",
				Description: "Board do projeto X",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(board.ID).NotTo(BeEmpty())
			Expect(board.OwnerID).To(Equal(owner.ID))
			Expect(outcome.Invited).To(BeEmpty())
			Expect(outcome.UnknownEmails).To(BeEmpty())
		})

		It("convida membros existentes por email e notifica", func() {
			board, outcome, err := service.CreateBoard(ctx, owner, CreateBoardInput{
				Name:         "Projeto X",
				InviteEmails: []string{"joao@example.com"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(board.Members).To(HaveLen(1))
			Expect(board.Members[0].ID).To(Equal(member.ID))
			Expect(outcome.Invited).To(HaveLen(1))

			Expect(notifier.pushed).To(HaveKey(member.ID))
			notification := notifier.pushed[member.ID][0]
			Expect(notification.Type).To(Equal(ports.NotificationBoardInvite))
			Expect(notification.Payload).To(HaveKeyWithValue("board_id", board.ID))
		})

		It("devolve emails desconhecidos sem falhar", func() {
			_, outcome, err := service.CreateBoard(ctx, owner, CreateBoardInput{
				Name:         "Projeto X",
				InviteEmails: []string{"joao@example.com", "ghost@example.com"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Invited).To(HaveLen(1))
			Expect(outcome.UnknownEmails).To(ConsistOf("ghost@example.com"))
		})

		It("rejeita auto-convite", func() {
			_, _, err := service.CreateBoard(ctx, owner, CreateBoardInput{
				Name:         "Projeto X",
				InviteEmails: []string{"maria@example.com"},
			})
			Expect(err).To(MatchError(errors.ErrSelfInvite))
		})

		It("rejeita email com sintaxe inválida", func() {
			_, _, err := service.CreateBoard(ctx, owner, CreateBoardInput{
				Name:         "Projeto X",
				InviteEmails: []string{"not-an-email"},
			})

			var invalidEmail *errors.InvalidEmail
			Expect(goerrors.As(err, &invalidEmail)).To(BeTrue())
			Expect(invalidEmail.Value).To(Equal("not-an-email"))
		})

		It("rejeita board sem nome", func() {
			_, _, err := service.CreateBoard(ctx, owner, CreateBoardInput{Name: "  "})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetBoard", func() {
		var boardID string

		BeforeEach(func() {
			board, _, err := service.CreateBoard(ctx, owner, CreateBoardInput{
				Name:         "Projeto X",
				InviteEmails: []string{"joao@example.com"},
			})
			Expect(err).NotTo(HaveOccurred())
			boardID = board.ID
		})

		It("dono pode ver o board", func() {
			board, err := service.GetBoard(ctx, owner.ID, boardID)
			Expect(err).NotTo(HaveOccurred())
			Expect(board.ID).To(Equal(boardID))
		})

		It("membro pode ver o board", func() {
			_, err := service.GetBoard(ctx, member.ID, boardID)
			Expect(err).NotTo(HaveOccurred())
		})

		It("quem não é membro recebe erro", func() {
			stranger := mustUser("ana", "ana@example.com")
			_, err := service.GetBoard(ctx, stranger.ID, boardID)
			Expect(err).To(MatchError(errors.ErrNotBoardMember))
		})

		It("board inexistente retorna not found", func() {
			_, err := service.GetBoard(ctx, owner.ID, "ghost")
			Expect(err).To(MatchError(errors.ErrBoardNotFound))
		})
	})

	Describe("UpdateBoard", func() {
		var boardID string

		BeforeEach(func() {
			board, _, err := service.CreateBoard(ctx, owner, CreateBoardInput{Name: "Projeto X"})
			Expect(err).NotTo(HaveOccurred())
			boardID = board.ID
		})

		It("dono pode renomear o board", func() {
			name := "Projeto Y"
			board, err := service.UpdateBoard(ctx, owner.ID, boardID, UpdateBoardInput{Name: &name})
			Expect(err).NotTo(HaveOccurred())
			Expect(board.Name).To(Equal("Projeto Y"))
		})

		It("quem não é dono recebe erro", func() {
			name := "Projeto Y"
			_, err := service.UpdateBoard(ctx, member.ID, boardID, UpdateBoardInput{Name: &name})
			Expect(err).To(MatchError(errors.ErrNotBoardOwner))
		})
	})

	Describe("DeleteBoard", func() {
		var boardID string

		BeforeEach(func() {
			board, _, err := service.CreateBoard(ctx, owner, CreateBoardInput{Name: "Projeto X"})
			Expect(err).NotTo(HaveOccurred())
			boardID = board.ID
		})

		It("dono pode deletar e o board some das listagens", func() {
			Expect(service.DeleteBoard(ctx, owner.ID, boardID)).To(Succeed())

			boards, err := service.ListBoards(ctx, owner.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(boards).To(BeEmpty())
		})

		It("quem não é dono recebe erro", func() {
			err := service.DeleteBoard(ctx, member.ID, boardID)
			Expect(err).To(MatchError(errors.ErrNotBoardOwner))
		})
	})

	Describe("InviteMembers", func() {
		var boardID string

		BeforeEach(func() {
			board, _, err := service.CreateBoard(ctx, owner, CreateBoardInput{
				Name:         "Projeto X",
				InviteEmails: []string{"joao@example.com"},
			})
			Expect(err).NotTo(HaveOccurred())
			boardID = board.ID
		})

		It("adiciona novos membros e notifica", func() {
			ana := mustUser("ana", "ana@example.com")

			outcome, err := service.InviteMembers(ctx, owner, boardID, []string{"ana@example.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Invited).To(HaveLen(1))

			board, err := service.GetBoard(ctx, owner.ID, boardID)
			Expect(err).NotTo(HaveOccurred())
			Expect(board.HasMember(ana.ID)).To(BeTrue())
			Expect(notifier.pushed).To(HaveKey(ana.ID))
		})

		It("ignora quem já é membro", func() {
			outcome, err := service.InviteMembers(ctx, owner, boardID, []string{"joao@example.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Invited).To(BeEmpty())
		})

		It("somente o dono pode convidar", func() {
			_, err := service.InviteMembers(ctx, member, boardID, []string{"ana@example.com"})
			Expect(err).To(MatchError(errors.ErrNotBoardOwner))
		})
	})

	Describe("ListBoards", func() {
		It("lista boards próprios e boards onde é membro", func() {
			_, _, err := service.CreateBoard(ctx, owner, CreateBoardInput{Name: "Da Maria"})
			Expect(err).NotTo(HaveOccurred())

			_, _, err = service.CreateBoard(ctx, member, CreateBoardInput{
				Name:         "Do João",
				InviteEmails: []string{"maria@example.com"},
			})
			Expect(err).NotTo(HaveOccurred())

			boards, err := service.ListBoards(ctx, owner.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(boards).To(HaveLen(2))
		})
	})
})
