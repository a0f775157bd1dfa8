package trainingcenters

// CreateTrainingCenterRequest represents the data needed to register a training center
type CreateTrainingCenterRequest struct {
	Name    string `json:"nome"`
	Address string `json:"endereco"`
	Owner   string `json:"proprietario"`
}
