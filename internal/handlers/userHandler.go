package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	models "github.com/rahul12st/Manipal-Marketplace-backend/internal/models"
	repo "github.com/rahul12st/Manipal-Marketplace-backend/internal/repo"
	utility "github.com/rahul12st/Manipal-Marketplace-backend/internal/utility"
	response "github.com/rahul12st/Manipal-Marketplace-backend/internal/utility/http"

	"github.com/go-chi/chi"
	"golang.org/x/crypto/bcrypt"
)

const defaultProfilePicture = "https://static.vecteezy.com/system/resources/previews/005/544/718/original/profile-icon-design-free-vector.jpg"

type SignInData struct {
	User_ID        string   `json:"user_id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Token          string   `json:"token"`
	RefreshToken   string   `json:"refresh_token"`
	ProfilePicture string   `json:"profile_picture"`
	LikedProducts  []string `json:"liked_products"`
}

type LikedProductRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}

// HashPassword is used to encrypt the password before it is stored in the DB
func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}

	return string(bytes)
}

// VerifyPassword checks the input password while verifying it with the password in the DB.
func VerifyPassword(userPassword string, providedPassword string) (bool, string) {
	err := bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword))
	check := true
	msg := ""

	if err != nil {
		msg = "email or password is incorrect"
		check = false
	}

	return check, msg
}

func signInDataFor(user models.User) SignInData {
	data := SignInData{
		User_ID:        user.User_id,
		FirstName:      *user.First_name,
		LastName:       *user.Last_name,
		Email:          *user.Email,
		Phone:          *user.Phone,
		ProfilePicture: user.Profile,
		LikedProducts:  user.LikedProducts,
	}
	if user.Token != nil {
		data.Token = *user.Token
	}
	if user.Refresh_token != nil {
		data.RefreshToken = *user.Refresh_token
	}
	return data
}

func SignUp(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	validationErr := validate.Struct(user)
	if validationErr != nil {
		response.RespondError(w, http.StatusBadRequest, "Fields not valid", validationErr)
		return
	}

	// Password Hashing
	password := HashPassword(*user.Password)
	user.Password = &password

	// Checking if user already exists
	alreadyExists, err := userRepo.CountByEmail(r.Context(), *user.Email)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}
	if alreadyExists > 0 {
		response.RespondError(w, http.StatusConflict, "User already exists!", nil)
		return
	}

	user.Created_at = time.Now()
	user.Updated_at = time.Now()
	user.Profile = defaultProfilePicture
	user.LikedProducts = []string{}

	created, err := userRepo.Create(r.Context(), user)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	token, refreshToken, err := utility.GenerateAllTokens(*created.Email, *created.First_name, *created.Last_name, created.User_id)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}
	if err := userRepo.UpdateTokens(r.Context(), created.User_id, token, refreshToken); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}
	created.Token = &token
	created.Refresh_token = &refreshToken

	response.RespondCreated(w, signInDataFor(created))
}

func Login(w http.ResponseWriter, r *http.Request) {
	var credentials models.User
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if credentials.Email == nil || credentials.Password == nil {
		response.RespondError(w, http.StatusBadRequest, "Email and password are required", nil)
		return
	}

	foundUser, err := userRepo.GetByEmail(r.Context(), *credentials.Email)
	if err != nil {
		if err == repo.ErrUserNotFound {
			response.RespondError(w, http.StatusUnauthorized, "Email or Password is incorrect", nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	passwordIsValid, msg := VerifyPassword(*credentials.Password, *foundUser.Password)
	if !passwordIsValid {
		response.RespondError(w, http.StatusUnauthorized, msg, nil)
		return
	}

	token, refreshToken, err := utility.GenerateAllTokens(*foundUser.Email, *foundUser.First_name, *foundUser.Last_name, foundUser.User_id)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}
	if err := userRepo.UpdateTokens(r.Context(), foundUser.User_id, token, refreshToken); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}
	foundUser.Token = &token
	foundUser.Refresh_token = &refreshToken

	response.RespondSuccess(w, signInDataFor(foundUser))
}

func GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uId")

	user, err := userRepo.GetByID(r.Context(), userID)
	if err != nil {
		if err == repo.ErrUserNotFound {
			response.RespondError(w, http.StatusNotFound, "User not found", nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Error retrieving user", err)
		return
	}

	user.Password = nil
	response.RespondSuccess(w, user)
}

func MyProfileByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	user, err := userRepo.GetByID(r.Context(), userID)
	if err != nil {
		if err == repo.ErrUserNotFound {
			response.RespondError(w, http.StatusNotFound, "User not found", nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Error retrieving user", err)
		return
	}

	user.Password = nil
	response.RespondSuccess(w, user)
}

// LikedProducts toggles a product in the user's liked list: a product already
// present is removed, otherwise it is appended.
func LikedProducts(w http.ResponseWriter, r *http.Request) {
	var req LikedProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.UserID == "" || req.ProductID == "" {
		response.RespondError(w, http.StatusBadRequest, "user_id and product_id are required", nil)
		return
	}

	user, err := userRepo.GetByID(r.Context(), req.UserID)
	if err != nil {
		if err == repo.ErrUserNotFound {
			response.RespondError(w, http.StatusNotFound, "User not found", nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Error retrieving user", err)
		return
	}

	liked := []string{}
	found := false
	for _, pid := range user.LikedProducts {
		if pid == req.ProductID {
			found = true
			continue
		}
		liked = append(liked, pid)
	}
	if !found {
		liked = append(liked, req.ProductID)
	}

	updated, err := userRepo.SetLikedProducts(r.Context(), req.UserID, liked)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Error updating liked products for %s", req.UserID), err)
		return
	}

	updated.Password = nil
	response.RespondSuccess(w, updated)
}
