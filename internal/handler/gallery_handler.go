package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
)

// galleryPageSize is the number of images shown per category page.
const galleryPageSize = 8

// galleryPageData is one page of a category's images.
type galleryPageData struct {
	Key      string
	Title    string
	Images   []string
	Page     int
	Pages    int
	Total    int
	PrevPage int
	NextPage int
}

// Gallery lists the photo categories.
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	categories, err := h.gallery.Categories(r.Context())
	if err != nil {
		h.log.WithField("error", err.Error()).Error("failed to list gallery categories")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.renderer.render(w, http.StatusOK, "gallery.html", "Gallery", h.popFlash(w, r), categories)
}

// GalleryCategory shows one page of a category's photos.
func (h *Handler) GalleryCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.gallery.Category(r.Context(), r.PathValue("category"))
	if err != nil {
		if errors.Is(err, errs.ErrCategoryNotFound) {
			h.NotFound(w, r)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	total := len(category.Images)
	pages := (total + galleryPageSize - 1) / galleryPageSize
	start := (page - 1) * galleryPageSize
	if start > total {
		start = total
	}
	end := start + galleryPageSize
	if end > total {
		end = total
	}

	data := galleryPageData{
		Key:      category.Key,
		Title:    category.Title,
		Images:   category.Images[start:end],
		Page:     page,
		Pages:    pages,
		Total:    total,
		PrevPage: page - 1,
		NextPage: page + 1,
	}
	h.renderer.render(w, http.StatusOK, "gallery_category.html", category.Title, h.popFlash(w, r), data)
}

// GalleryImage streams one stored gallery image.
func (h *Handler) GalleryImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	image, err := h.gallery.OpenImage(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer image.Close()

	contentType := mime.TypeByExtension(path.Ext(id))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	io.Copy(w, image)
}

// GalleryEditPage serves the gallery management page.
func (h *Handler) GalleryEditPage(w http.ResponseWriter, r *http.Request) {
	categories, err := h.gallery.Categories(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.renderer.render(w, http.StatusOK, "gallery_edit.html", "Manage Gallery", h.popFlash(w, r), categories)
}

// GalleryEditAction dispatches the management form actions.
func (h *Handler) GalleryEditAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		// Plain forms without a file part land here too.
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
	}

	key := r.PostFormValue("key")
	var err error
	switch action := r.PostFormValue("action"); action {
	case "create_category":
		_, err = h.gallery.CreateCategory(r.Context(), key, r.PostFormValue("title"))
	case "delete_category":
		err = h.gallery.DeleteCategory(r.Context(), key)
	case "add_image":
		file, header, ferr := r.FormFile("image")
		if ferr != nil {
			err = ferr
			break
		}
		defer file.Close()
		_, err = h.gallery.AddImage(r.Context(), key, header.Filename, file)
	case "remove_image":
		err = h.gallery.RemoveImage(r.Context(), key, r.PostFormValue("image_id"))
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	if errors.Is(err, errs.ErrInvalidFileType) {
		h.setFlash(w, r, "Invalid file type.")
	} else if err != nil {
		h.log.WithField("error", err.Error()).Error("gallery edit failed")
		h.setFlash(w, r, "Gallery change failed.")
	} else {
		h.setFlash(w, r, "Gallery updated.")
	}
	http.Redirect(w, r, "/gallery/edit", http.StatusSeeOther)
}
