package logging

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"
	FieldChainId   = "chainId"

	FieldDuration = "duration"
	FieldUrl      = "url"

	FieldContract     = "contract"
	FieldArtifactPath = "artifactPath"
	FieldSolcVersion  = "solcVersion"

	FieldAddress  = "address"
	FieldDeployer = "deployer"
	FieldBalance  = "balance"

	FieldTxHash      = "txHash"
	FieldTxNonce     = "txNonce"
	FieldGasUsed     = "gasUsed"
	FieldBlockNumber = "blockNumber"

	FieldDeploymentId = "deploymentId"
)
