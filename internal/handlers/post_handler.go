package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"miraBack/internal/models"
	"miraBack/internal/services"
)

type PostHandler struct {
	Service *services.PostService
}

// CreatePost accepts either a JSON body or a multipart form with an
// optional image part.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var (
		post      models.Post
		image     []byte
		imageName string
	)

	if ct := r.Header.Get("Content-Type"); len(ct) >= 19 && ct[:19] == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			http.Error(w, "Invalid multipart form", http.StatusBadRequest)
			return
		}
		post.Contenu = r.FormValue("contenu")
		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			data, readErr := io.ReadAll(file)
			if readErr != nil {
				http.Error(w, "Cannot read image", http.StatusInternalServerError)
				return
			}
			image = data
			imageName = header.Filename
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}
	post.UserID = callerID(r)

	created, err := h.Service.CreatePost(r.Context(), post, image, imageName)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *PostHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	posts, err := h.Service.GetFeed(r.Context(), callerID(r), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

func (h *PostHandler) GetPostsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	posts, err := h.Service.GetPostsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeletePost(r.Context(), postID, callerID(r)); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "post supprimé"})
}
