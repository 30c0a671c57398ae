// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/emplanner/planner-backend/internal/controller"
	"github.com/emplanner/planner-backend/internal/db"
	"github.com/emplanner/planner-backend/internal/handler"
	"github.com/emplanner/planner-backend/internal/queue"
	"github.com/emplanner/planner-backend/internal/repository"
	"github.com/emplanner/planner-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()
	q := queue.NewInMemoryQueue()

	campaignRepo := &repository.CampaignRepository{DB: db.DB}
	postRepo := &repository.PostRepository{DB: db.DB}
	noteRepo := &repository.NoteRepository{DB: db.DB}
	profileRepo := &repository.ProfileRepository{DB: db.DB}
	deliveryRepo := &repository.DeliveryRepository{DB: db.DB}
	queue.StartPostPublishSubscriber(q, deliveryRepo, postRepo)

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
	}
	publishService := &service.PublishService{
		PostRepo:     postRepo,
		CampaignRepo: campaignRepo,
		DeliveryRepo: deliveryRepo,
		Queue:        q,
		LinkBase:     os.Getenv("LINK_BASE_URL"),
	}

	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
	}
	postController := &controller.PostController{
		PostRepo:       postRepo,
		PublishService: publishService,
	}
	noteController := &controller.NoteController{NoteRepo: noteRepo}
	profileController := &controller.ProfileController{ProfileRepo: profileRepo}

	postHandler := &handler.PostHandler{
		PostRepo:     postRepo,
		DeliveryRepo: deliveryRepo,
	}

	r := chi.NewRouter()

	// Campaign routes
	r.Post("/campaigns", campaignController.CreateCampaign)
	r.Get("/campaigns", campaignController.ListCampaigns)
	r.Get("/campaigns/{id}", campaignController.GetCampaign)
	r.Put("/campaigns/{id}", campaignController.UpdateCampaign)
	r.Delete("/campaigns/{id}", campaignController.DeleteCampaign)

	// Post routes
	r.Post("/posts", postController.CreatePost)
	r.Get("/posts", postController.ListPosts)
	r.Get("/posts/{id}", postController.GetPost)
	r.Put("/posts/{id}", postController.UpdatePost)
	r.Delete("/posts/{id}", postController.DeletePost)
	r.Post("/posts/{id}/publish", postController.PublishPost)
	r.Get("/posts/{id}/stats", postHandler.GetPostHandlerWithStats)

	// Note routes
	r.Post("/notes", noteController.CreateNote)
	r.Get("/notes", noteController.ListNotes)
	r.Patch("/notes/{id}", noteController.PatchNote)
	r.Delete("/notes/{id}", noteController.DeleteNote)

	// Profile routes
	r.Get("/profiles", profileController.ListProfiles)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Println("🚀 Server running on", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
