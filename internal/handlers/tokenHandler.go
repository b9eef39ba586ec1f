package handlers

import (
	"net/http"
	"strings"

	utility "github.com/rahul12st/Manipal-Marketplace-backend/internal/utility"
	response "github.com/rahul12st/Manipal-Marketplace-backend/internal/utility/http"
)

func VerifyToken(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		response.RespondError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims, errMsg := utility.ValidateToken(tokenString)
	if errMsg != "" {
		response.RespondError(w, http.StatusUnauthorized, errMsg, nil)
		return
	}
	if claims.Email == "" {
		response.RespondError(w, http.StatusBadRequest, "Invalid token", nil)
		return
	}

	response.RespondSuccess(w, map[string]string{"user_id": claims.Uid, "email": claims.Email})
}
