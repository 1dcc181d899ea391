package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/go-api"

	"github.com/Chirag30Sharma/AgriScan-Backend/internal/storage"
)

var errInvalidRequest = errors.New("invalid request")

func (s server) register(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /user/registration Profile Register
	//
	// Register a new farmer profile.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     type: object
	// responses:
	//   '201':
	//     description: registration successful
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if err := validateRegisterRequest(req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	// no existence check, a repeated registration creates a second row
	if err := s.s.CreateProfile(r.Context(), &storage.CreateProfileParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	}); err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to create profile: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte("Registration successful"))
}

func validateRegisterRequest(req RegisterRequest) error {
	for _, v := range []struct {
		name  string
		value string
	}{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"phone_number", req.PhoneNumber},
		{"password", req.Password},
	} {
		if v.value == "" {
			return fmt.Errorf("%w: %s is required", errInvalidRequest, v.name)
		}
	}

	return nil
}

func (s server) login(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /user/login Profile Login
	//
	// Check credentials, the outcome is reported in the body code.
	//
	// ---
	// responses:
	//   '200':
	//     description: code 1 with the profile, code 2 for an unknown phone, code 3 for a wrong password
	//     schema:
	//       "$ref": "#/definitions/LoginResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	p, err := s.s.GetProfile(r.Context(), req.PhoneNumber)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteOK(w, http.StatusOK, LoginResponse{Code: loginCodeUnknownPhone})
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to get profile: %s", err.Error())
		return
	}

	// passwords are stored and compared as plain text
	if p.Password != req.Password {
		api.WriteOK(w, http.StatusOK, LoginResponse{Code: loginCodeWrongPassword})
		return
	}

	api.WriteOK(w, http.StatusOK, LoginResponse{
		Code:        loginCodeOK,
		PhoneNumber: p.PhoneNumber,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
	})
}

func (s server) listChats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /user/chat Chat ListChats
	//
	// Return up to 1000 chats in storage order.
	//
	// ---
	// responses:
	//   '200':
	//     description: chats
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Chat"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	chats, err := s.s.ListChats(r.Context(), maxChats)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to list chats: %s", err.Error())
		return
	}

	out := make([]*Chat, len(chats))
	for i, v := range chats {
		out[i] = toAPIChat(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) createChat(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /user/chat Chat CreateChat
	//
	// Create a chat, like and dislike counters start at zero.
	//
	// ---
	// responses:
	//   '200':
	//     description: created
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if err := s.s.CreateChat(r.Context(), &storage.CreateChatParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Title:       req.Title,
		Description: req.Description,
	}); err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to create chat: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s server) likeChat(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /user/chat/{chatID}/like Chat LikeChat
	//
	// Increment the like counter of a chat.
	//
	// ---
	// parameters:
	// - name: chatID
	//   in: path
	//   required: true
	//   type: integer
	// responses:
	//   '201':
	//     description: liked
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: chat not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.react(w, r, storage.LikeReaction, "Liked the chat")
}

func (s server) dislikeChat(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /user/chat/{chatID}/dislike Chat DislikeChat
	//
	// Increment the dislike counter of a chat.
	//
	// ---
	// parameters:
	// - name: chatID
	//   in: path
	//   required: true
	//   type: integer
	// responses:
	//   '201':
	//     description: disliked
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: chat not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.react(w, r, storage.DislikeReaction, "DisLiked the chat")
}

func (s server) react(w http.ResponseWriter, r *http.Request, reaction storage.ReactionType, confirmation string) {
	chatID, err := strconv.ParseInt(chi.URLParam(r, "chatID"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	// the increment is atomic in the database, concurrent reactions do not lose updates
	if err := s.s.AddReaction(r.Context(), chatID, reaction); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "chat not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to add reaction: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(confirmation))
}

func (s server) uploadImage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /upload/image Problem UploadImage
	//
	// Store a crop problem report.
	//
	// ---
	// responses:
	//   '200':
	//     description: stored
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req UploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if err := s.s.CreateProblemReport(r.Context(), &storage.CreateProblemReportParams{
		Photo:       req.Photo,
		Description: req.Description,
		ImagePath:   req.ImagePath,
		FarmerID:    req.PhoneNumber,
		// literal single space join, an empty name leaves the space in place
		FarmerName: req.FirstName + " " + req.LastName,
	}); err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to create problem report: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s server) uploadFile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /upload/file Problem UploadFile
	//
	// Save a photo on disk and return its path for use in /upload/image.
	//
	// ---
	// consumes:
	// - multipart/form-data
	// parameters:
	// - name: photo
	//   in: formData
	//   required: true
	//   type: file
	// responses:
	//   '200':
	//     description: saved
	//     schema:
	//       "$ref": "#/definitions/UploadFileResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	f, fh, err := r.FormFile("photo")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer f.Close()

	path, err := s.fs.Save(fh.Filename, f)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to save file: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, UploadFileResponse{ImagePath: path})
}

func (s server) history(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /history Profile History
	//
	// Return advisory responses addressed to a phone number.
	//
	// ---
	// responses:
	//   '200':
	//     description: responses
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/HistoryItem"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req HistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	rr, err := s.s.ListResponses(r.Context(), req.Phone)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to list responses: %s", err.Error())
		return
	}

	out := make([]*HistoryItem, len(rr))
	for i, v := range rr {
		out[i] = toAPIHistoryItem(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) changePassword(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /changepassword Profile ChangePassword
	//
	// Change a profile's password.
	//
	// ---
	// responses:
	//   '200':
	//     description: password changed
	//     schema:
	//       "$ref": "#/definitions/MessageResponse"
	//   '400':
	//     description: wrong current password or mismatched confirmation
	//     schema:
	//       "$ref": "#/definitions/MessageResponse"
	//   '404':
	//     description: user not found
	//     schema:
	//       "$ref": "#/definitions/MessageResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	p, err := s.s.GetProfile(r.Context(), req.PhoneNumber)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteOK(w, http.StatusNotFound, MessageResponse{Message: "User not found"})
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to get profile: %s", err.Error())
		return
	}

	if req.CurrentPassword != p.Password {
		api.WriteOK(w, http.StatusBadRequest, MessageResponse{Message: "Current password is incorrect"})
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		api.WriteOK(w, http.StatusBadRequest, MessageResponse{Message: "New password and confirm password do not match"})
		return
	}

	if err := s.s.SetPassword(r.Context(), req.PhoneNumber, req.NewPassword); err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to set password: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, MessageResponse{Message: "Password changed successfully"})
}
