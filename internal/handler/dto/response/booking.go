package response

// StatusResponse is the success envelope: {"status":"ok"} for book,
// {"status":"deleted"} for delete.
type StatusResponse struct {
	Status string `json:"status"`
}

func OK() StatusResponse {
	return StatusResponse{Status: "ok"}
}

func Deleted() StatusResponse {
	return StatusResponse{Status: "deleted"}
}
