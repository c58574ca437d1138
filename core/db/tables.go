package db

const (
	// DeploymentsTable maps chainId (8 bytes, big endian) || address to a JSON-encoded types.Deployment.
	DeploymentsTable TableName = "Deployments"
)
