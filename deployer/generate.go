package deployer

//go:generate go run github.com/matryer/moq -out deployer_generated_mock.go -rm -stub -with-resets . Runtime ContractFactory DeployedContract
