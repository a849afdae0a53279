package jwt_generator

import "github.com/golang-jwt/jwt/v4"

const IssuerDefault = "commerce-api"

const ClaimsContextKey = "jwtClaims"

type Claims struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserId int64  `json:"userId"`
	jwt.RegisteredClaims
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
