package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"taskflow/app/controllers"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, taskController *controllers.TaskController, pageController *controllers.PageController) {
	router.HandleFunc("/health", pageController.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/tasks", taskController.GetTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks", taskController.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/export", taskController.ExportTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{taskID}", taskController.GetTaskByID).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{taskID}", taskController.DeleteTask).Methods(http.MethodDelete)
	api.HandleFunc("/tasks/{taskID}/toggle", taskController.ToggleTask).Methods(http.MethodPost)
	api.HandleFunc("/filter", taskController.GetFilter).Methods(http.MethodGet)
	api.HandleFunc("/filter", taskController.SetFilter).Methods(http.MethodPut)
	api.HandleFunc("/stats", taskController.GetStats).Methods(http.MethodGet)

	api.HandleFunc("/about", pageController.About).Methods(http.MethodGet)
	api.HandleFunc("/contact", pageController.SubmitContact).Methods(http.MethodPost)
}
