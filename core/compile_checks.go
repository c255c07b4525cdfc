package core

import glog "github.com/goliatone/go-logger/glog"

var (
	_ ProductReader   = (*ProductService)(nil)
	_ ProductWriter   = (*ProductService)(nil)
	_ CategoryReader  = (*CategoryService)(nil)
	_ InventoryReader = (*InventoryService)(nil)
	_ MetricsRecorder = NopMetricsRecorder{}
	_ ConfigProvider  = (*CfgxConfigProvider)(nil)
	_ OptionsResolver = GoOptionsResolver{}
	_ RawConfigLoader = EnvRawConfigLoader{}
	_ RawConfigLoader = StaticRawConfigLoader{}

	_ Logger         = glog.Nop()
	_ LoggerProvider = glog.ProviderFromLogger(glog.Nop())
)
