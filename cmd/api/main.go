package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"blogly/cmd/app"
	"blogly/internal/config"
	"blogly/internal/database"
	handlers "blogly/internal/handler"
	"blogly/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, _, services := app.App(cfg)
	defer database.MethodsDB.CloseDB(db)

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/users", handler.ListUsers).Methods(http.MethodGet)
	router.HandleFunc("/users/new", handler.NewUserForm).Methods(http.MethodGet)
	router.HandleFunc("/users/new", handler.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/users/{id:[0-9]+}", handler.ShowUser).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}/edit", handler.EditUserForm).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}/edit", handler.UpdateUser).Methods(http.MethodPost)
	router.HandleFunc("/users/{id:[0-9]+}/delete", handler.DeleteUser).Methods(http.MethodPost)

	router.HandleFunc("/users/{id:[0-9]+}/posts/new", handler.NewPostForm).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}/posts/new", handler.CreatePost).Methods(http.MethodPost)

	router.HandleFunc("/posts/{id:[0-9]+}", handler.ShowPost).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id:[0-9]+}/edit", handler.EditPostForm).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id:[0-9]+}/edit", handler.UpdatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id:[0-9]+}/delete", handler.DeletePost).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(handler.NotFound)

	handlerChain := middleware.Chain(
		router,
		middleware.RecoverMiddleware,
		middleware.LoggingMiddleware,
		middleware.RequestIDMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)
	fmt.Printf("Адрес: http://localhost%s/\n", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
