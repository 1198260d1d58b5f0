package api

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	yaml "gopkg.in/yaml.v2"
)

const configEnvPrefix = "HYDRA_ACTION"

// ConfigReader reads the action config from file and environment
type ConfigReader interface {
	ReadConfig(configPath string, environmentVariables []string, flags ActionInputs) (*ActionConfig, error)
}

type configReaderImpl struct {
}

// NewConfigReader returns a new ConfigReader
func NewConfigReader() ConfigReader {
	return &configReaderImpl{}
}

// ReadConfig layers the optional config file, HYDRA_ACTION_* overrides, the INPUT_* action inputs and the command line flags, in that order
func (h *configReaderImpl) ReadConfig(configPath string, environmentVariables []string, flags ActionInputs) (config *ActionConfig, err error) {

	config, err = h.readConfigFromFile(configPath)
	if err != nil {
		return
	}

	// e.g. HYDRA_ACTION_POLLING_MAXBUILDATTEMPTS=20
	err = OverrideFromEnv(config, configEnvPrefix, environmentVariables)
	if err != nil {
		return nil, errors.Wrap(err, "Failed overriding config from environment variables")
	}

	inputs, err := ReadActionInputs(environmentVariables)
	if err != nil {
		return nil, errors.Wrap(err, "Failed reading action inputs")
	}

	err = config.ApplyInputs(inputs)
	if err != nil {
		return nil, errors.Wrap(err, "Failed applying action inputs")
	}

	err = config.ApplyInputs(flags)
	if err != nil {
		return nil, errors.Wrap(err, "Failed applying flags")
	}

	// fill in all the defaults for empty values
	config.SetDefaults()

	err = config.Validate()
	if err != nil {
		return
	}

	return
}

func (h *configReaderImpl) readConfigFromFile(configPath string) (config *ActionConfig, err error) {

	config = &ActionConfig{}

	if configPath == "" {
		return
	}

	log.Info().Msgf("Reading %v file...", configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed reading config file %v", configPath)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "Failed unmarshalling config file %v", configPath)
	}

	log.Info().Msgf("Finished reading %v file successfully", configPath)

	return
}
