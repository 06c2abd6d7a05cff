package handler

type (
	ClientListResponse = clientListResponse
	NavigationResponse = navigationResponse
)
